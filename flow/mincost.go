package flow

import "errors"

// ErrMalformedNetwork is returned when a predecessor chain does not lead back
// to the source. That only happens when the caller broke the precondition of
// having no negative-cost residual cycle reachable from the source.
var ErrMalformedNetwork = errors.New("flow: malformed network (negative residual cycle?)")

// MinCostMaxFlow pushes a maximum flow of minimum total cost from source to
// sink using successive shortest augmenting paths. The flow is written onto
// g's arcs; g must not be used concurrently while this runs.
//
// Each iteration:
//  1. Finds the cheapest residual path source→sink (opts.Method). If the sink
//     is unreachable the loop is done.
//  2. Rebuilds the path from predecessor links.
//  3. Takes the bottleneck: the smallest residual capacity on the path.
//  4. Pushes the bottleneck on every path arc (twins receive the negation),
//     adds bottleneck·cost per arc to the total cost and the bottleneck to the
//     total flow, then calls opts.OnAugment.
//
// Every iteration adds at least one unit of flow, so the loop ends after at
// most OutCapacity(source) iterations. Calling it again on a solved graph
// returns a zero Result.
//
// It returns:
//   - Result: total flow, total cost and number of augmentations.
//   - err: ErrNilGraph, ErrVertexOutOfRange, ErrSourceEqualsSink before any
//     mutation; ErrIterationLimit or a context error with the partial Result
//     reached so far; ErrMalformedNetwork if the precondition was violated.
//
// Complexity (LabelCorrecting): O(F · V · E), F = number of augmentations.
func MinCostMaxFlow(g *Graph, source, sink int, opts FlowOptions) (Result, error) {
	opts.normalize()
	if err := checkEndpoints(g, source, sink); err != nil {
		return Result{}, err
	}

	var search func(source int) *ShortestPaths
	switch opts.Method {
	case Potentials:
		search = newPotentialSearch(g).search
	default:
		search = func(source int) *ShortestPaths {
			r := newRelaxer(g, source)
			r.run()

			return r.sp
		}
	}

	var res Result
	for {
		if err := opts.Ctx.Err(); err != nil {
			return res, err
		}

		sp := search(source)
		if !sp.Reached(sink) {
			return res, nil
		}
		if opts.MaxIterations > 0 && res.Iterations >= opts.MaxIterations {
			return res, ErrIterationLimit
		}
		path, ok := sp.PathTo(sink)
		if !ok {
			return res, ErrMalformedNetwork
		}

		step := g.augment(path)
		res.Flow += step.Bottleneck
		res.Cost += step.Bottleneck * step.PathCost
		res.Iterations++

		if opts.OnAugment != nil {
			step.Iteration = res.Iterations
			step.Path = pathVertices(g, source, path)
			step.TotalFlow = res.Flow
			step.TotalCost = res.Cost
			opts.OnAugment(step)
		}
	}
}

// augment pushes the bottleneck of path along it and reports the bottleneck
// and per-unit path cost.
func (g *Graph) augment(path []ArcRef) Augmentation {
	bottleneck := Unreached
	for _, ref := range path {
		if r := g.adj[ref.From][ref.Index].Residual(); r < bottleneck {
			bottleneck = r
		}
	}
	var pathCost int64
	for _, ref := range path {
		pathCost += g.adj[ref.From][ref.Index].Cost
		g.push(ref.From, ref.Index, bottleneck)
	}

	return Augmentation{Arcs: path, Bottleneck: bottleneck, PathCost: pathCost}
}

func pathVertices(g *Graph, source int, path []ArcRef) []int {
	vs := make([]int, 0, len(path)+1)
	vs = append(vs, source)
	for _, ref := range path {
		vs = append(vs, g.adj[ref.From][ref.Index].To)
	}

	return vs
}

func checkEndpoints(g *Graph, source, sink int) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := g.checkVertex(source); err != nil {
		return err
	}
	if err := g.checkVertex(sink); err != nil {
		return err
	}
	if source == sink {
		return ErrSourceEqualsSink
	}

	return nil
}
