package flow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcmf/flow"
)

// arcSpec is a forward arc used to build fixtures.
type arcSpec struct {
	from, to       int
	capacity, cost int64
}

// buildGraph returns a graph with n vertices and the given arcs in order.
func buildGraph(t testing.TB, n int, arcs []arcSpec) *flow.Graph {
	t.Helper()
	g, err := flow.NewGraph(n)
	require.NoError(t, err)
	for _, a := range arcs {
		_, err = g.AddArc(a.from, a.to, a.capacity, a.cost)
		require.NoError(t, err)
	}

	return g
}

// randomArcs draws m arcs between distinct vertices of [0, n) with capacity in
// [0, maxCap] and cost in [0, maxCost].
func randomArcs(r *rand.Rand, n, m int, maxCap, maxCost int64) []arcSpec {
	arcs := make([]arcSpec, 0, m)
	for len(arcs) < m {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		arcs = append(arcs, arcSpec{
			from:     u,
			to:       v,
			capacity: r.Int63n(maxCap + 1),
			cost:     r.Int63n(maxCost + 1),
		})
	}

	return arcs
}

// bruteForce enumerates every integral flow assignment of arcs on n vertices
// and returns the maximum net flow out of s into t together with the minimum
// cost among flows of that value. Only usable on tiny instances.
func bruteForce(n int, arcs []arcSpec, s, t int) (bestFlow, bestCost int64) {
	assign := make([]int64, len(arcs))
	bestFlow, bestCost = -1, 0

	var walk func(i int)
	walk = func(i int) {
		if i < len(arcs) {
			for f := int64(0); f <= arcs[i].capacity; f++ {
				assign[i] = f
				walk(i + 1)
			}
			return
		}
		net := make([]int64, n) // outflow - inflow
		var cost int64
		for k, a := range arcs {
			net[a.from] += assign[k]
			net[a.to] -= assign[k]
			cost += assign[k] * a.cost
		}
		for v := 0; v < n; v++ {
			if v != s && v != t && net[v] != 0 {
				return
			}
		}
		value := net[s]
		if value > bestFlow || (value == bestFlow && cost < bestCost) {
			bestFlow, bestCost = value, cost
		}
	}
	walk(0)

	return bestFlow, bestCost
}
