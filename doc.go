// Package mcmf routes as much flow as possible through a capacitated network
// and, among all maximum flows, finds one of minimum total cost.
//
// 🚀 What is mcmf?
//
//	A small, dependency-light toolkit built around one engine:
//		• Residual graph: index-based arena of paired forward/reverse arcs
//		• Shortest paths: label-correcting (Bellman–Ford) or Dijkstra with potentials
//		• Min-cost max-flow: successive shortest augmenting paths
//		• Cross-checks: Edmonds–Karp max-flow value, residual sanity checks
//		• Networks: named nodes with throughput limits via vertex splitting
//		• Reports: per-iteration paths, totals, arcs carrying flow
//
// Everything is organized under three packages and one command:
//
//	flow/      Graph, BellmanFord, MinCostMaxFlow, EdmondsKarp, SanityChecks
//	network/   Problem description, YAML loading, vertex splitting, name map
//	report/    text report fed by the engine's OnAugment hook
//	cmd/mcmf/  command-line driver (flags, MCMF_* environment, .env)
//
// Quick example (vertex splitting of a single station):
//
//	n1-in ──(1000, 0)──▶ n1-out ──(30, 5)──▶ n2-in ──(55, 0)──▶ n2-out
//
// Node capacities become arc capacities, so the engine itself only ever sees
// plain arcs.
//
//	go run github.com/katalvlaran/mcmf/cmd/mcmf -method potentials
package mcmf
