package flow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcmf/flow"
)

func TestEdmondsKarpDiamond(t *testing.T) {
	g := buildGraph(t, 4, diamond)
	var iterations int
	o := flow.DefaultOptions()
	o.OnAugment = func(a flow.Augmentation) { iterations = a.Iteration }

	maxFlow, err := flow.EdmondsKarp(g, 0, 3, o)
	require.NoError(t, err)
	require.Equal(t, int64(4), maxFlow)
	require.Equal(t, 2, iterations)
	require.NoError(t, flow.SanityChecks.Maximal(g, 0, 3))
}

func TestEdmondsKarpErrors(t *testing.T) {
	_, err := flow.EdmondsKarp(nil, 0, 1, flow.DefaultOptions())
	require.ErrorIs(t, err, flow.ErrNilGraph)

	g := buildGraph(t, 4, crossing)
	_, err = flow.EdmondsKarp(g, 3, 3, flow.DefaultOptions())
	require.ErrorIs(t, err, flow.ErrSourceEqualsSink)

	o := flow.DefaultOptions()
	o.MaxIterations = 1
	maxFlow, err := flow.EdmondsKarp(g, 0, 3, o)
	require.ErrorIs(t, err, flow.ErrIterationLimit)
	require.Equal(t, int64(1), maxFlow)
}

// TestEdmondsKarpAgreesWithMinCost cross-checks the flow value only; costs
// are ignored by Edmonds–Karp.
func TestEdmondsKarpAgreesWithMinCost(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		g := buildGraph(t, 10, randomArcs(r, 10, 30, 20, 10))
		ek := g.Clone()

		res, err := flow.MinCostMaxFlow(g, 0, 9, flow.DefaultOptions())
		require.NoError(t, err)
		maxFlow, err := flow.EdmondsKarp(ek, 0, 9, flow.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, maxFlow, res.Flow, "trial %d", trial)
		require.NoError(t, flow.SanityChecks.Conservation(ek, 0, 9))
	}
}
