package flow

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is the umbrella for all construction-time rejections.
// Use errors.Is(err, ErrInvalidArgument) to detect any of them.
var ErrInvalidArgument = errors.New("flow: invalid argument")

// ErrNegativeCapacity is returned (wrapped in *ArcError) when an arc is added
// with a negative capacity.
var ErrNegativeCapacity = fmt.Errorf("%w: negative capacity", ErrInvalidArgument)

// ErrVertexOutOfRange is returned when a vertex id is outside [0, N).
var ErrVertexOutOfRange = fmt.Errorf("%w: vertex out of range", ErrInvalidArgument)

// ErrSourceEqualsSink is returned when source and sink are the same vertex.
var ErrSourceEqualsSink = fmt.Errorf("%w: source equals sink", ErrInvalidArgument)

// ErrArcNotFound is returned when an ArcRef does not point at an arc.
var ErrArcNotFound = fmt.Errorf("%w: arc not found", ErrInvalidArgument)

// ErrCapacityExceeded is returned by Graph.Push when the push would move an
// arc or its twin outside its capacity bounds.
var ErrCapacityExceeded = fmt.Errorf("%w: push exceeds residual capacity", ErrInvalidArgument)

// ErrNilGraph is returned when a nil *Graph is passed.
var ErrNilGraph = errors.New("flow: graph is nil")

// ErrIterationLimit is returned when FlowOptions.MaxIterations augmentations
// were performed and the sink was still reachable.
var ErrIterationLimit = errors.New("flow: iteration limit reached")

// Unreached is the distance reported for vertices the search never reached.
const Unreached int64 = math.MaxInt64

// ArcError is returned when an arc is rejected at construction time.
type ArcError struct {
	From, To int
	Capacity int64
}

func (e *ArcError) Error() string {
	return fmt.Sprintf("flow: negative capacity on arc %d→%d: %d", e.From, e.To, e.Capacity)
}

// Unwrap lets errors.Is match ErrNegativeCapacity and ErrInvalidArgument.
func (e *ArcError) Unwrap() error { return ErrNegativeCapacity }

// ShortestPathMethod selects how the engine finds each cheapest residual path.
type ShortestPathMethod int

const (
	// LabelCorrecting runs a full Bellman–Ford style search for every path.
	LabelCorrecting ShortestPathMethod = iota

	// Potentials runs one label-correcting search for vertex potentials and
	// then Dijkstra on reduced costs for every following path.
	Potentials
)

// String returns the flag spelling of the method.
func (m ShortestPathMethod) String() string {
	switch m {
	case LabelCorrecting:
		return "label-correcting"
	case Potentials:
		return "potentials"
	default:
		return fmt.Sprintf("ShortestPathMethod(%d)", int(m))
	}
}

// ParseMethod maps a flag spelling back to a ShortestPathMethod.
func ParseMethod(s string) (ShortestPathMethod, error) {
	switch s {
	case "", "label-correcting", "bellman-ford":
		return LabelCorrecting, nil
	case "potentials", "johnson":
		return Potentials, nil
	}

	return 0, fmt.Errorf("%w: unknown shortest-path method %q", ErrInvalidArgument, s)
}

// Augmentation describes one augmenting step. It is handed to
// FlowOptions.OnAugment after the flow on the path has been updated.
type Augmentation struct {
	Iteration  int      // 1-based iteration number
	Path       []int    // vertices from source to sink
	Arcs       []ArcRef // arcs traversed, len(Arcs) == len(Path)-1
	Bottleneck int64    // units pushed along the path
	PathCost   int64    // sum of arc costs along the path (per unit)
	TotalFlow  int64    // flow accumulated including this step
	TotalCost  int64    // cost accumulated including this step
}

// Result is the outcome of a solve.
type Result struct {
	Flow       int64 // total flow pushed from source to sink
	Cost       int64 // total cost of that flow
	Iterations int   // number of augmenting paths used
}

// FlowOptions configures MinCostMaxFlow and EdmondsKarp.
//   - Ctx: checked between iterations; nil means context.Background().
//   - Method: shortest-path strategy (LabelCorrecting by default).
//   - MaxIterations: stop after this many augmentations (0 = unbounded).
//   - OnAugment: called after every augmentation; must not mutate the graph.
type FlowOptions struct {
	Ctx           context.Context
	Method        ShortestPathMethod
	MaxIterations int
	OnAugment     func(Augmentation)
}

// DefaultOptions returns the options used when nothing is configured:
// background context, label-correcting search, no iteration limit, no hook.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:    context.Background(),
		Method: LabelCorrecting,
	}
}

func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.MaxIterations < 0 {
		o.MaxIterations = 0
	}
}
