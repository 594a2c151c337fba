package flow_test

import (
	"fmt"

	"github.com/katalvlaran/mcmf/flow"
)

////////////////////////////////////////////////////////////////////////////////
// Min-cost max-flow Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleMinCostMaxFlow solves a two-path network.
// Graph:
//
//	0→1(cap 3, cost 1)→3(cap 2, cost 1)
//	0→2(cap 2, cost 2)→3(cap 3, cost 1)
//
// The cheaper upper path saturates first (2 units at cost 2), then the lower
// path carries 2 more units at cost 3.
func ExampleMinCostMaxFlow() {
	g, _ := flow.NewGraph(4)
	_, _ = g.AddArc(0, 1, 3, 1)
	_, _ = g.AddArc(1, 3, 2, 1)
	_, _ = g.AddArc(0, 2, 2, 2)
	_, _ = g.AddArc(2, 3, 3, 1)

	res, _ := flow.MinCostMaxFlow(g, 0, 3, flow.DefaultOptions())
	fmt.Printf("flow=%d cost=%d iterations=%d\n", res.Flow, res.Cost, res.Iterations)
	// Output:
	// flow=4 cost=10 iterations=2
}

// ExampleFlowOptions_onAugment prints every augmenting path as it is applied.
func ExampleFlowOptions_onAugment() {
	g, _ := flow.NewGraph(4)
	_, _ = g.AddArc(0, 1, 1, 1)
	_, _ = g.AddArc(1, 2, 1, 1)
	_, _ = g.AddArc(2, 3, 1, 1)
	_, _ = g.AddArc(0, 2, 1, 5)
	_, _ = g.AddArc(1, 3, 1, 5)

	opts := flow.DefaultOptions()
	opts.Method = flow.Potentials
	opts.OnAugment = func(a flow.Augmentation) {
		fmt.Printf("#%d %v +%d (total %d)\n", a.Iteration, a.Path, a.Bottleneck, a.TotalFlow)
	}
	res, _ := flow.MinCostMaxFlow(g, 0, 3, opts)
	fmt.Println("cost:", res.Cost)
	// Output:
	// #1 [0 1 2 3] +1 (total 1)
	// #2 [0 2 1 3] +1 (total 2)
	// cost: 12
}

////////////////////////////////////////////////////////////////////////////////
// Edmonds–Karp Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleEdmondsKarp checks the flow value on a clone, leaving g unsolved.
func ExampleEdmondsKarp() {
	g, _ := flow.NewGraph(3)
	_, _ = g.AddArc(0, 1, 4, 9)
	_, _ = g.AddArc(1, 2, 3, 9)
	_, _ = g.AddArc(0, 2, 2, 1)

	maxFlow, _ := flow.EdmondsKarp(g.Clone(), 0, 2, flow.DefaultOptions())
	fmt.Println(maxFlow)
	// Output:
	// 5
}
