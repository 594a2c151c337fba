package flow

import "container/heap"

// potentialSearch finds cheapest residual paths with Dijkstra on reduced
// costs cost(u,v) + pot[u] - pot[v].
//
// The first search is label-correcting and seeds pot with exact distances.
// After every search pot[v] is replaced by the new distance of each reached
// vertex, which keeps every residual reduced cost non-negative: arcs on a
// shortest path get reduced cost 0, so their reverse twins do too. Vertices
// unreachable from the source stay unreachable (augmenting only adds reverse
// arcs between reached vertices), so their stale potentials are never read.
type potentialSearch struct {
	g      *Graph
	pot    []int64
	seeded bool
}

func newPotentialSearch(g *Graph) *potentialSearch {
	return &potentialSearch{g: g, pot: make([]int64, g.VertexCount())}
}

func (p *potentialSearch) search(source int) *ShortestPaths {
	var sp *ShortestPaths
	if !p.seeded {
		r := newRelaxer(p.g, source)
		r.run()
		sp = r.sp
		p.seeded = true
	} else {
		sp = p.dijkstra(source)
	}
	for v, d := range sp.Dist {
		if d != Unreached {
			p.pot[v] = d
		}
	}

	return sp
}

// dijkstra runs a lazy-decrease-key Dijkstra over reduced costs and converts
// the labels back to real path costs before returning.
func (p *potentialSearch) dijkstra(source int) *ShortestPaths {
	n := p.g.VertexCount()
	sp := &ShortestPaths{
		Source:     source,
		Dist:       make([]int64, n),
		PrevVertex: make([]int, n),
		PrevArc:    make([]int, n),
		Passes:     1,
	}
	reduced := make([]int64, n)
	visited := make([]bool, n)
	for v := 0; v < n; v++ {
		reduced[v] = Unreached
		sp.PrevVertex[v] = -1
		sp.PrevArc[v] = -1
	}
	reduced[source] = 0

	pq := nodePQ{{id: source, dist: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true
		for i, a := range p.g.adj[u] {
			if a.Capacity-a.Flow <= 0 || visited[a.To] {
				continue
			}
			nd := reduced[u] + a.Cost + p.pot[u] - p.pot[a.To]
			if nd < reduced[a.To] {
				reduced[a.To] = nd
				sp.PrevVertex[a.To] = u
				sp.PrevArc[a.To] = i
				heap.Push(&pq, &nodeItem{id: a.To, dist: nd})
			}
		}
	}

	for v := 0; v < n; v++ {
		if reduced[v] == Unreached {
			sp.Dist[v] = Unreached
			continue
		}
		sp.Dist[v] = reduced[v] - p.pot[source] + p.pot[v]
	}

	return sp
}

// nodeItem is a heap entry: a vertex and its tentative reduced distance.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Stale entries are
// skipped on pop through the visited set.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
