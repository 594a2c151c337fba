package flow

import "fmt"

// Arc is one directed residual arc.
//
// Forward arcs are the ones added through AddArc; reverse arcs are their
// automatically created twins with zero capacity and negated cost. For a
// forward arc 0 ≤ Flow ≤ Capacity; its twin always carries -Flow.
type Arc struct {
	// To is the head vertex.
	To int

	// Capacity is the maximum flow the arc may ever carry.
	Capacity int64

	// Cost is the per-unit cost. Reverse arcs carry the negated forward cost.
	Cost int64

	// Flow is the flow currently assigned.
	Flow int64

	twin    int  // index of the twin inside the adjacency slice of To
	forward bool // true for arcs added through AddArc
}

// Residual returns the additional flow the arc can still carry.
func (a Arc) Residual() int64 { return a.Capacity - a.Flow }

// Forward reports whether the arc was added through AddArc (as opposed to
// being a reverse twin).
func (a Arc) Forward() bool { return a.forward }

// ArcRef is a stable handle to an arc: the tail vertex and the position in
// that vertex's arc slice.
type ArcRef struct {
	From  int
	Index int
}

func (r ArcRef) String() string { return fmt.Sprintf("%d#%d", r.From, r.Index) }

// Graph is a residual graph stored as an arena of adjacency slices.
// Insertion order of arcs is significant: ArcRef indices never move.
type Graph struct {
	adj     [][]Arc
	numArcs int // forward arcs only
}

// NewGraph allocates a graph with n vertices and no arcs.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrInvalidArgument, n)
	}

	return &Graph{adj: make([][]Arc, n)}, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adj) }

// ArcCount returns the number of forward arcs (reverse twins excluded).
func (g *Graph) ArcCount() int { return g.numArcs }

// AddArc appends a forward arc from→to and its reverse twin to→from.
//
// The forward arc gets the given capacity and cost and zero flow; the twin
// gets capacity 0 and cost -cost. Self-loops and parallel arcs are allowed.
//
// Errors (graph untouched on failure):
//   - ErrVertexOutOfRange if from or to is outside [0, N).
//   - *ArcError (matching ErrNegativeCapacity) if capacity < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddArc(from, to int, capacity, cost int64) (ArcRef, error) {
	if err := g.checkVertex(from); err != nil {
		return ArcRef{}, err
	}
	if err := g.checkVertex(to); err != nil {
		return ArcRef{}, err
	}
	if capacity < 0 {
		return ArcRef{}, &ArcError{From: from, To: to, Capacity: capacity}
	}

	fwdIdx := len(g.adj[from])
	revIdx := len(g.adj[to])
	if from == to {
		// both halves land in the same slice, one after the other
		revIdx++
	}
	g.adj[from] = append(g.adj[from], Arc{To: to, Capacity: capacity, Cost: cost, twin: revIdx, forward: true})
	g.adj[to] = append(g.adj[to], Arc{To: from, Capacity: 0, Cost: -cost, twin: fwdIdx})
	g.numArcs++

	return ArcRef{From: from, Index: fwdIdx}, nil
}

// Arcs returns a copy of the arcs leaving v in insertion order, or nil when v
// is out of range.
func (g *Graph) Arcs(v int) []Arc {
	if v < 0 || v >= len(g.adj) {
		return nil
	}
	out := make([]Arc, len(g.adj[v]))
	copy(out, g.adj[v])

	return out
}

// Arc returns the arc referenced by ref.
func (g *Graph) Arc(ref ArcRef) (Arc, error) {
	if !g.valid(ref) {
		return Arc{}, fmt.Errorf("%w: %s", ErrArcNotFound, ref)
	}

	return g.adj[ref.From][ref.Index], nil
}

// Twin returns the handle of the arc paired with ref.
func (g *Graph) Twin(ref ArcRef) (ArcRef, error) {
	if !g.valid(ref) {
		return ArcRef{}, fmt.Errorf("%w: %s", ErrArcNotFound, ref)
	}
	a := g.adj[ref.From][ref.Index]

	return ArcRef{From: a.To, Index: a.twin}, nil
}

// Push adds delta to the flow of ref and subtracts it from the twin.
// Negative deltas cancel flow. The push is rejected with ErrCapacityExceeded if
// either arc would end up with a negative residual capacity.
func (g *Graph) Push(ref ArcRef, delta int64) error {
	if !g.valid(ref) {
		return fmt.Errorf("%w: %s", ErrArcNotFound, ref)
	}
	a := g.adj[ref.From][ref.Index]
	t := g.adj[a.To][a.twin]
	if delta > a.Residual() || -delta > t.Residual() {
		return fmt.Errorf("%w: %s by %d", ErrCapacityExceeded, ref, delta)
	}
	g.push(ref.From, ref.Index, delta)

	return nil
}

// push is the unchecked flow mutator used by the engine.
func (g *Graph) push(u, i int, delta int64) {
	a := &g.adj[u][i]
	a.Flow += delta
	g.adj[a.To][a.twin].Flow -= delta
}

// ResetFlow sets every arc's flow back to zero.
func (g *Graph) ResetFlow() {
	for u := range g.adj {
		for i := range g.adj[u] {
			g.adj[u][i].Flow = 0
		}
	}
}

// Clone returns a deep copy, flows included.
func (g *Graph) Clone() *Graph {
	c := &Graph{adj: make([][]Arc, len(g.adj)), numArcs: g.numArcs}
	for u, arcs := range g.adj {
		c.adj[u] = make([]Arc, len(arcs))
		copy(c.adj[u], arcs)
	}

	return c
}

// ForwardArcs calls fn for every forward arc in vertex, then insertion order.
// Iteration stops early when fn returns false.
func (g *Graph) ForwardArcs(fn func(ref ArcRef, a Arc) bool) {
	for u, arcs := range g.adj {
		for i, a := range arcs {
			if !a.forward {
				continue
			}
			if !fn(ArcRef{From: u, Index: i}, a) {
				return
			}
		}
	}
}

// OutCapacity returns the summed capacity of forward arcs leaving v. It bounds
// the flow that can leave a source.
func (g *Graph) OutCapacity(v int) int64 {
	if v < 0 || v >= len(g.adj) {
		return 0
	}
	var sum int64
	for _, a := range g.adj[v] {
		if a.forward && a.To != v {
			sum += a.Capacity
		}
	}

	return sum
}

func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, v, len(g.adj))
	}

	return nil
}

func (g *Graph) valid(ref ArcRef) bool {
	return ref.From >= 0 && ref.From < len(g.adj) && ref.Index >= 0 && ref.Index < len(g.adj[ref.From])
}
