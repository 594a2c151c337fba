package flow

// ShortestPaths is the shortest-cost tree produced by one residual search.
//
// Dist[v] is the cheapest cost from Source to v over arcs with positive
// residual capacity, or Unreached. PrevVertex[v] and PrevArc[v] name the arc
// (PrevVertex[v], PrevArc[v]) through which v was last improved; both are -1
// for the source and for unreached vertices.
type ShortestPaths struct {
	Source     int
	Dist       []int64
	PrevVertex []int
	PrevArc    []int
	Passes     int // full passes over all arcs that were run
}

// Reached reports whether v has a finite distance.
func (sp *ShortestPaths) Reached(v int) bool {
	return v >= 0 && v < len(sp.Dist) && sp.Dist[v] != Unreached
}

// PathTo walks the predecessor links back from t and returns the arcs of the
// source→t path in forward order. It reports false when t was not reached or
// the predecessor chain does not lead back to the source.
func (sp *ShortestPaths) PathTo(t int) ([]ArcRef, bool) {
	if !sp.Reached(t) {
		return nil, false
	}
	var rev []ArcRef
	for v := t; v != sp.Source; v = sp.PrevVertex[v] {
		u := sp.PrevVertex[v]
		// a chain longer than |V| can only come from a predecessor cycle
		if u < 0 || len(rev) >= len(sp.Dist) {
			return nil, false
		}
		rev = append(rev, ArcRef{From: u, Index: sp.PrevArc[v]})
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, true
}

// BellmanFord computes cheapest residual distances from source with a
// label-correcting search. Only arcs with Residual() > 0 are considered and
// negative costs are allowed.
//
// Steps:
//  1. dist[source] = 0, every other vertex Unreached.
//  2. Repeat full passes: for every reached u and every arc u→v with residual
//     capacity, if dist[u]+cost < dist[v] record the improvement and its arc.
//  3. Stop after a pass with no improvement, or after |V| passes.
//
// A negative cycle reachable with positive residual capacity is not detected;
// the pass bound keeps the call finite but the labels are then meaningless.
//
// Complexity:
//
//	Time:   O(V · E)
//	Memory: O(V)
func BellmanFord(g *Graph, source int) (*ShortestPaths, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.checkVertex(source); err != nil {
		return nil, err
	}
	r := newRelaxer(g, source)
	r.run()

	return r.sp, nil
}

// relaxer holds the mutable state of one label-correcting search.
type relaxer struct {
	g  *Graph
	sp *ShortestPaths
}

func newRelaxer(g *Graph, source int) *relaxer {
	n := g.VertexCount()
	sp := &ShortestPaths{
		Source:     source,
		Dist:       make([]int64, n),
		PrevVertex: make([]int, n),
		PrevArc:    make([]int, n),
	}
	for v := 0; v < n; v++ {
		sp.Dist[v] = Unreached
		sp.PrevVertex[v] = -1
		sp.PrevArc[v] = -1
	}
	sp.Dist[source] = 0

	return &relaxer{g: g, sp: sp}
}

// run performs passes until the labels settle or the |V| bound is hit.
func (r *relaxer) run() {
	n := r.g.VertexCount()
	for updated := true; updated && r.sp.Passes < n; {
		updated = r.pass()
		r.sp.Passes++
	}
}

// pass relaxes every residual arc once and reports whether any label moved.
func (r *relaxer) pass() bool {
	dist := r.sp.Dist
	updated := false
	for u, arcs := range r.g.adj {
		if dist[u] == Unreached {
			continue
		}
		for i := range arcs {
			a := &arcs[i]
			if a.Capacity-a.Flow <= 0 {
				continue
			}
			if nd := dist[u] + a.Cost; nd < dist[a.To] {
				dist[a.To] = nd
				r.sp.PrevVertex[a.To] = u
				r.sp.PrevArc[a.To] = i
				updated = true
			}
		}
	}

	return updated
}
