package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcmf/flow"
)

func TestSanityChecksOnSolvedGraph(t *testing.T) {
	g := buildGraph(t, 4, crossing)
	_, err := flow.MinCostMaxFlow(g, 0, 3, flow.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, flow.SanityChecks.All(g, 0, 3))

	empty := buildGraph(t, 0, nil)
	require.NoError(t, flow.SanityChecks.Optimal(empty))
}

func TestSanityChecksDetectViolations(t *testing.T) {
	// flow pushed on a single arc of a path breaks conservation at vertex 1
	g := buildGraph(t, 3, []arcSpec{{0, 1, 2, 1}, {1, 2, 2, 1}})
	require.NoError(t, g.Push(flow.ArcRef{From: 0, Index: 0}, 1))
	require.NoError(t, flow.SanityChecks.Residual(g))
	require.Error(t, flow.SanityChecks.Conservation(g, 0, 2))

	// an untouched graph still has an augmenting path
	g = buildGraph(t, 3, []arcSpec{{0, 1, 2, 1}, {1, 2, 2, 1}})
	require.Error(t, flow.SanityChecks.Maximal(g, 0, 2))
	require.Error(t, flow.SanityChecks.All(g, 0, 2))
	require.ErrorIs(t, flow.SanityChecks.Maximal(g, 1, 1), flow.ErrSourceEqualsSink)

	// a negative residual cycle unreachable from any source is still found
	g = buildGraph(t, 4, []arcSpec{{0, 1, 1, 0}, {2, 3, 1, -2}, {3, 2, 1, 1}})
	require.Error(t, flow.SanityChecks.Optimal(g))
}

// TestOptimalDetectsSuboptimalFlow pushes flow along the expensive path by hand.
func TestOptimalDetectsSuboptimalFlow(t *testing.T) {
	g := buildGraph(t, 3, []arcSpec{{0, 2, 1, 10}, {0, 1, 1, 1}, {1, 2, 1, 1}})
	require.NoError(t, g.Push(flow.ArcRef{From: 0, Index: 0}, 1))

	require.NoError(t, flow.SanityChecks.Residual(g))
	require.NoError(t, flow.SanityChecks.Conservation(g, 0, 2))
	// 2→0 (cost -10) then 0→1→2 (cost 2) is a negative cycle
	require.Error(t, flow.SanityChecks.Optimal(g))
}
