// Package network turns a named min-cost flow problem into a flow.Graph.
//
// A Problem lists nodes with a throughput capacity plus capacity and cost
// matrices for the connections between them. Build validates it and splits
// every node into an in-vertex and an out-vertex so that node capacities
// become ordinary arc capacities:
//
//	name-in ──(node capacity, cost 0)──▶ name-out
//	a-out   ──(capacity[a][b], cost[a][b])──▶ b-in
//
// Problems can be written in code, taken from DefaultProblem or decoded from
// YAML with LoadProblem and LoadProblemFile.
package network
