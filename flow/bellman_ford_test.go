package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcmf/flow"
)

// TestBellmanFordDistances checks labels, predecessors and negative arc costs.
func TestBellmanFordDistances(t *testing.T) {
	g := buildGraph(t, 5, []arcSpec{
		{0, 1, 1, 4},
		{0, 2, 1, 1},
		{2, 1, 1, -2},
		{1, 3, 1, 1},
	})

	sp, err := flow.BellmanFord(g, 0)
	require.NoError(t, err)
	require.Equal(t, []int64{0, -1, 1, 0, flow.Unreached}, sp.Dist)
	require.True(t, sp.Reached(3))
	require.False(t, sp.Reached(4))
	require.False(t, sp.Reached(-1))
	require.Equal(t, -1, sp.PrevVertex[0])
	require.Equal(t, 2, sp.PrevVertex[1])
	require.LessOrEqual(t, sp.Passes, g.VertexCount())

	path, ok := sp.PathTo(3)
	require.True(t, ok)
	var vs []int
	for _, ref := range path {
		vs = append(vs, ref.From)
	}
	require.Equal(t, []int{0, 2, 1}, vs)

	_, ok = sp.PathTo(4)
	require.False(t, ok)

	empty, ok := sp.PathTo(0)
	require.True(t, ok)
	require.Empty(t, empty)
}

// TestBellmanFordSkipsSaturatedArcs ensures only positive residual arcs count.
func TestBellmanFordSkipsSaturatedArcs(t *testing.T) {
	g := buildGraph(t, 3, []arcSpec{{0, 1, 2, 1}, {1, 2, 1, 1}, {0, 2, 0, 0}})
	require.NoError(t, g.Push(flow.ArcRef{From: 1, Index: 1}, 1))

	sp, err := flow.BellmanFord(g, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), sp.Dist[1])
	require.False(t, sp.Reached(2), "saturated and zero-capacity arcs must be ignored")

	// the reverse twin of 1→2 now has residual 1 and cost -1
	sp, err = flow.BellmanFord(g, 2)
	require.NoError(t, err)
	require.Equal(t, int64(-1), sp.Dist[1])
}

// TestBellmanFordNegativeCycleTerminates checks the |V| pass bound.
func TestBellmanFordNegativeCycleTerminates(t *testing.T) {
	g := buildGraph(t, 3, []arcSpec{{0, 1, 1, 1}, {1, 2, 1, -3}, {2, 1, 1, 1}})

	sp, err := flow.BellmanFord(g, 0)
	require.NoError(t, err)
	require.Equal(t, g.VertexCount(), sp.Passes)
	_, ok := sp.PathTo(2)
	require.False(t, ok, "a predecessor cycle must not yield a path")
}

func TestBellmanFordErrors(t *testing.T) {
	_, err := flow.BellmanFord(nil, 0)
	require.ErrorIs(t, err, flow.ErrNilGraph)

	g := buildGraph(t, 2, nil)
	_, err = flow.BellmanFord(g, 2)
	require.ErrorIs(t, err, flow.ErrVertexOutOfRange)
}
