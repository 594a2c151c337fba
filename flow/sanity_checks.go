package flow

import "fmt"

// SanityChecks contains verification procedures for solved graphs.
var SanityChecks SanityCheckers

// SanityCheckers holds sanity check procedures for a Graph whose flow has been
// computed. Every check returns nil when the property holds.
type SanityCheckers struct{}

// All runs Residual, Conservation, Maximal and Optimal in that order.
func (sc SanityCheckers) All(g *Graph, source, sink int) error {
	if err := sc.Residual(g); err != nil {
		return err
	}
	if err := sc.Conservation(g, source, sink); err != nil {
		return err
	}
	if err := sc.Maximal(g, source, sink); err != nil {
		return err
	}

	return sc.Optimal(g)
}

// Residual checks the residual-pair invariant and the capacity bounds: twins
// carry exactly negated flows and every forward arc has 0 ≤ flow ≤ capacity.
func (SanityCheckers) Residual(g *Graph) error {
	for u, arcs := range g.adj {
		for i, a := range arcs {
			t := g.adj[a.To][a.twin]
			if t.To != u || t.twin != i {
				return fmt.Errorf("arc %d#%d and its twin %d#%d do not point at each other", u, i, a.To, a.twin)
			}
			if a.Flow+t.Flow != 0 {
				return fmt.Errorf("arc %d→%d has flow %d but its twin has %d", u, a.To, a.Flow, t.Flow)
			}
			if a.forward && (a.Flow < 0 || a.Flow > a.Capacity) {
				return fmt.Errorf("capacity of %d on arc %d→%d violated by flow %d", a.Capacity, u, a.To, a.Flow)
			}
		}
	}

	return nil
}

// Conservation checks that inflow equals outflow at every vertex other than
// source and sink.
func (SanityCheckers) Conservation(g *Graph, source, sink int) error {
	net := make([]int64, len(g.adj)) // inflow - outflow
	for u, arcs := range g.adj {
		for _, a := range arcs {
			if !a.forward {
				continue
			}
			net[u] -= a.Flow
			net[a.To] += a.Flow
		}
	}
	for v, d := range net {
		if v != source && v != sink && d != 0 {
			return fmt.Errorf("vertex %d does not have its inflow equal to its outflow (difference %d)", v, d)
		}
	}

	return nil
}

// Maximal returns an error if an augmenting path remains in the residual graph.
func (SanityCheckers) Maximal(g *Graph, source, sink int) error {
	if err := checkEndpoints(g, source, sink); err != nil {
		return err
	}
	if path := bfsAugmentingPath(g, source, sink); path != nil {
		return fmt.Errorf("found an augmenting path of %d arcs from %d to %d; flow is not maximum", len(path), source, sink)
	}

	return nil
}

// Optimal returns an error if the residual graph contains a cycle of negative
// total cost with positive residual capacity on every arc. The absence of such
// a cycle certifies that the current flow has minimum cost for its value.
//
// Every vertex starts at distance 0 (a virtual source joined to all of them),
// so cycles anywhere in the graph are found, not only those reachable from the
// real source.
func (SanityCheckers) Optimal(g *Graph) error {
	n := len(g.adj)
	dist := make([]int64, n)
	// n+1 vertices counting the virtual one, so labels settle within n passes
	for pass := 0; pass <= n; pass++ {
		updated := false
		for u, arcs := range g.adj {
			for _, a := range arcs {
				if a.Residual() > 0 && dist[u]+a.Cost < dist[a.To] {
					dist[a.To] = dist[u] + a.Cost
					updated = true
				}
			}
		}
		if !updated {
			return nil
		}
	}

	return fmt.Errorf("residual graph contains a negative-cost cycle; flow cost is not minimum")
}
