package flow

// EdmondsKarp pushes a maximum flow from source to sink ignoring arc costs,
// using breadth-first (fewest-arcs) augmenting paths. Like MinCostMaxFlow it
// writes the flow onto g; pass g.Clone() to keep the original untouched.
//
// It is mostly useful as an independent check of the flow value reached by
// MinCostMaxFlow: both must agree on every network.
//
// It returns:
//   - maxFlow: the flow pushed by this call.
//   - err: ErrNilGraph, ErrVertexOutOfRange, ErrSourceEqualsSink,
//     ErrIterationLimit or a context error (with the flow pushed so far).
//
// opts.Method is ignored; opts.OnAugment receives every augmentation.
//
// Complexity: O(V · E²)
// Memory:     O(V)
func EdmondsKarp(g *Graph, source, sink int, opts FlowOptions) (maxFlow int64, err error) {
	opts.normalize()
	if err = checkEndpoints(g, source, sink); err != nil {
		return 0, err
	}

	iterations := 0
	var cost int64
	for {
		if err = opts.Ctx.Err(); err != nil {
			return maxFlow, err
		}

		path := bfsAugmentingPath(g, source, sink)
		if len(path) == 0 {
			return maxFlow, nil
		}
		if opts.MaxIterations > 0 && iterations >= opts.MaxIterations {
			return maxFlow, ErrIterationLimit
		}

		step := g.augment(path)
		maxFlow += step.Bottleneck
		cost += step.Bottleneck * step.PathCost
		iterations++

		if opts.OnAugment != nil {
			step.Iteration = iterations
			step.Path = pathVertices(g, source, path)
			step.TotalFlow = maxFlow
			step.TotalCost = cost
			opts.OnAugment(step)
		}
	}
}

// bfsAugmentingPath returns the arcs of a fewest-arcs residual path
// source→sink, or nil when the sink is unreachable.
func bfsAugmentingPath(g *Graph, source, sink int) []ArcRef {
	n := g.VertexCount()
	// parent[v] = arc used to discover v
	parent := make([]ArcRef, n)
	visited := make([]bool, n)
	visited[source] = true

	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for i, a := range g.adj[u] {
			if visited[a.To] || a.Residual() <= 0 {
				continue
			}
			visited[a.To] = true
			parent[a.To] = ArcRef{From: u, Index: i}
			if a.To == sink {
				var path []ArcRef
				for v := sink; v != source; v = parent[v].From {
					path = append([]ArcRef{parent[v]}, path...)
				}

				return path
			}
			queue = append(queue, a.To)
		}
	}

	return nil
}
