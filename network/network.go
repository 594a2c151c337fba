package network

import (
	"fmt"

	"github.com/katalvlaran/mcmf/flow"
)

const (
	inSuffix  = "-in"
	outSuffix = "-out"
)

// Network is a Problem compiled into a residual graph with split vertices.
//
// Node i of the problem becomes vertex 2i (name-in) and vertex 2i+1
// (name-out), joined by a zero-cost arc whose capacity is the node capacity.
// A connection i→j becomes the arc i-out → j-in.
type Network struct {
	Graph  *flow.Graph
	Names  *Names
	Source int // in-vertex of the source node
	Sink   int // out-vertex of the sink node

	nodeArcs map[string]flow.ArcRef
}

// FlowArc is a forward arc carrying positive flow, with named endpoints.
type FlowArc struct {
	From, To string
	Flow     int64
	Cost     int64
}

// Build validates p and compiles it. All node arcs are added first in node
// order, then the connection arcs in row-major order.
func Build(p Problem) (*Network, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := len(p.Nodes)
	g, err := flow.NewGraph(2 * n)
	if err != nil {
		return nil, err
	}
	names := NewNames(2 * n)
	nw := &Network{Graph: g, Names: names, nodeArcs: make(map[string]flow.ArcRef, n)}

	for _, nd := range p.Nodes {
		in := names.Intern(nd.Name + inSuffix)
		out := names.Intern(nd.Name + outSuffix)
		ref, err := g.AddArc(in, out, nd.Capacity, 0)
		if err != nil {
			return nil, fmt.Errorf("network: node %s: %w", nd.Name, err)
		}
		nw.nodeArcs[nd.Name] = ref
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c := p.Capacity[i][j]
			if i == j || c == nil || *c == 0 {
				continue
			}
			if _, err = g.AddArc(2*i+1, 2*j, *c, *p.Cost[i][j]); err != nil {
				return nil, fmt.Errorf("network: %s→%s: %w", p.Nodes[i].Name, p.Nodes[j].Name, err)
			}
		}
	}

	nw.Source, _ = names.ID(p.Source + inSuffix)
	nw.Sink, _ = names.ID(p.Sink + outSuffix)

	return nw, nil
}

// Solve runs flow.MinCostMaxFlow from Source to Sink.
func (nw *Network) Solve(opts flow.FlowOptions) (flow.Result, error) {
	return flow.MinCostMaxFlow(nw.Graph, nw.Source, nw.Sink, opts)
}

// NodeArc returns the in→out arc of the named node.
func (nw *Network) NodeArc(name string) (flow.ArcRef, bool) {
	ref, ok := nw.nodeArcs[name]

	return ref, ok
}

// Throughput returns the flow currently passing through the named node.
func (nw *Network) Throughput(name string) (int64, error) {
	ref, ok := nw.nodeArcs[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown node %q", ErrInvalidProblem, name)
	}
	a, err := nw.Graph.Arc(ref)
	if err != nil {
		return 0, err
	}

	return a.Flow, nil
}

// FlowArcs lists every forward arc with positive flow, in vertex then
// insertion order.
func (nw *Network) FlowArcs() []FlowArc {
	var out []FlowArc
	nw.Graph.ForwardArcs(func(ref flow.ArcRef, a flow.Arc) bool {
		if a.Flow > 0 {
			out = append(out, FlowArc{
				From: nw.Names.Name(ref.From),
				To:   nw.Names.Name(a.To),
				Flow: a.Flow,
				Cost: a.Cost,
			})
		}

		return true
	})

	return out
}
