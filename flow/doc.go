// Package flow implements minimum-cost maximum-flow on an index-based residual
// graph using successive shortest augmenting paths.
//
// The package is built around three pieces:
//
//   - Graph: an arena of vertices [0, N) each owning an ordered slice of arcs.
//     Every AddArc creates a forward arc (capacity c, cost w) together with a
//     reverse twin (capacity 0, cost -w). The twins reference each other by
//     (vertex, index) pairs, so pushing δ units on one arc always pushes -δ on
//     the other and their residual capacities keep summing to c.
//
//   - BellmanFord: a label-correcting shortest-path search over arcs with
//     positive residual capacity. Passes over all arcs repeat until one makes no
//     update or |V| passes have run. It is sound in the presence of the
//     negative-cost reverse arcs that appear once flow has been pushed.
//
//   - MinCostMaxFlow: the engine. It repeatedly finds the cheapest residual
//     path from source to sink, augments it by its bottleneck, and accumulates
//     total flow and total cost until the sink becomes unreachable.
//
// # Algorithms
//
// LabelCorrecting (default) runs full Bellman–Ford style passes for every
// augmenting path.
//
//	Time:   O(F · V · E) worst case, F = number of augmentations
//	Memory: O(V + E)
//
// Potentials runs one label-correcting search for initial vertex potentials,
// then Dijkstra on reduced costs (Johnson's technique) for every later path.
//
//	Time:   O(V · E + F · (V + E) log V)
//	Memory: O(V + E)
//
// Both strategies yield the same total flow and total cost; the individual arc
// flows may differ when several cheapest paths tie.
//
// # API
//
//	g, _ := flow.NewGraph(4)
//	g.AddArc(0, 1, 3, 1)
//	g.AddArc(1, 3, 2, 1)
//	g.AddArc(0, 2, 2, 2)
//	g.AddArc(2, 3, 3, 1)
//
//	res, err := flow.MinCostMaxFlow(g, 0, 3, flow.DefaultOptions())
//	// res.Flow == 4, res.Cost == 10
//
// After a solve the per-arc flows stay on the graph; walk them with
// Graph.ForwardArcs or Graph.Arcs. Solving the same graph again returns a zero
// Result because no augmenting path is left.
//
// EdmondsKarp computes the plain maximum flow value on the same arena and is
// handy as an independent cross-check. SanityChecks verifies the residual-pair
// invariant, capacity bounds, conservation, maximality and optimality of a
// solved graph.
//
// # Errors
//
//	ErrInvalidArgument  - umbrella for every construction-time rejection.
//	ErrNegativeCapacity - AddArc with capacity < 0 (returned inside *ArcError).
//	ErrVertexOutOfRange - a vertex id outside [0, N).
//	ErrSourceEqualsSink - source and sink are the same vertex.
//	ErrNilGraph         - a nil *Graph was passed.
//	ErrIterationLimit   - FlowOptions.MaxIterations was reached.
//	ErrMalformedNetwork - a predecessor chain did not lead back to the source.
//	context.Canceled / context.DeadlineExceeded - FlowOptions.Ctx is done.
//
// A negative-cost cycle with positive residual capacity reachable from the
// source is a caller precondition violation. It is reported as
// ErrMalformedNetwork when it breaks a predecessor chain; otherwise the result
// is undefined. Graphs whose original arcs all have
// non-negative cost never contain one.
//
// # Concurrency
//
// A Graph is not safe for concurrent use. One solve call owns the graph for its
// whole duration; synchronize externally when a graph must be shared.
package flow
