package flow_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mcmf/flow"
)

// buildRandomGraph constructs a graph with V vertices where every ordered pair
// u→v gets an arc with probability p. Capacities are in [1, maxCap] and costs
// in [0, maxCost].
func buildRandomGraph(b *testing.B, V int, p float64, maxCap, maxCost int64, seed int64) *flow.Graph {
	r := rand.New(rand.NewSource(seed))
	g, err := flow.NewGraph(V)
	if err != nil {
		b.Fatal(err)
	}
	for u := 0; u < V; u++ {
		for v := 0; v < V; v++ {
			if u == v || r.Float64() >= p {
				continue
			}
			if _, err = g.AddArc(u, v, r.Int63n(maxCap)+1, r.Int63n(maxCost+1)); err != nil {
				b.Fatal(err)
			}
		}
	}

	return g
}

// BenchmarkMinCostMaxFlow compares the two shortest-path methods on graphs of
// increasing size. Each iteration solves a fresh clone.
func BenchmarkMinCostMaxFlow(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		edgeProb float64
		seed     int64
	}{
		{"Small", 50, 0.10, 42},
		{"Medium", 200, 0.03, 4242},
		{"Large", 500, 0.01, 424242},
	}

	for _, tc := range cases {
		g := buildRandomGraph(b, tc.vertices, tc.edgeProb, 50, 20, tc.seed)
		for _, m := range methods {
			opts := flow.DefaultOptions()
			opts.Method = m
			b.Run(tc.name+"/"+m.String(), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := flow.MinCostMaxFlow(g.Clone(), 0, tc.vertices-1, opts); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
		b.Run(tc.name+"/edmonds-karp", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := flow.EdmondsKarp(g.Clone(), 0, tc.vertices-1, flow.DefaultOptions()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
