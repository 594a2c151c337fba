// Package report renders the progress and outcome of a min-cost flow run as
// plain text: the first few augmenting paths with named vertices, the totals,
// and every arc that ends up carrying flow.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mcmf/flow"
	"github.com/katalvlaran/mcmf/network"
)

// DefaultIterationLimit is how many augmentations are written out by default.
const DefaultIterationLimit = 5

// ErrNilWriter is returned by Summary when the Reporter has no writer.
var ErrNilWriter = errors.New("report: writer is nil")

// Namer resolves a vertex id to a display name. *network.Names implements it.
type Namer interface {
	Name(id int) string
}

// Reporter writes a text report of one solve.
//
// Observe has the signature of flow.FlowOptions.OnAugment and is meant to be
// plugged in there; Summary is called once the solve returned. A Reporter
// belongs to a single run and is not safe for concurrent use.
type Reporter struct {
	w      io.Writer
	names  Namer
	log    zerolog.Logger
	limit  int
	logged int
	err    error // first write error seen by Observe
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithLogger attaches a structured logger. Every augmentation is logged at
// debug level, including the ones past the iteration limit.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Reporter) {
		r.log = l
	}
}

// WithIterationLimit sets how many augmentations are written to the report.
// Zero disables the iteration section; a negative value writes all of them.
func WithIterationLimit(n int) Option {
	return func(r *Reporter) {
		r.limit = n
	}
}

// New returns a Reporter writing to w. Vertex ids are resolved through names;
// a nil names prints raw ids.
func New(w io.Writer, names Namer, opts ...Option) *Reporter {
	r := &Reporter{
		w:     w,
		names: names,
		log:   zerolog.Nop(),
		limit: DefaultIterationLimit,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Observe records one augmentation. The first write error is kept and
// returned by Err and Summary; later augmentations are still logged.
func (r *Reporter) Observe(a flow.Augmentation) {
	path := r.pathString(a.Path)
	r.log.Debug().
		Int("iteration", a.Iteration).
		Str("path", path).
		Int64("bottleneck", a.Bottleneck).
		Int64("path_cost", a.PathCost).
		Int64("total_flow", a.TotalFlow).
		Int64("total_cost", a.TotalCost).
		Msg("augmented")

	if r.err != nil || r.w == nil || (r.limit >= 0 && r.logged >= r.limit) {
		return
	}
	r.logged++
	_, r.err = fmt.Fprintf(r.w, "Iteration: %d\nPath: %s\nFound flow: %d\nCumulative flow: %d\n\n",
		a.Iteration, path, a.Bottleneck, a.TotalFlow)
}

// Err returns the first error hit while writing iterations.
func (r *Reporter) Err() error { return r.err }

// Summary writes the totals followed by one "from => to: flow" line per arc.
func (r *Reporter) Summary(res flow.Result, arcs []network.FlowArc) error {
	if r.w == nil {
		return ErrNilWriter
	}
	if r.err != nil {
		return r.err
	}
	r.log.Info().
		Int64("flow", res.Flow).
		Int64("cost", res.Cost).
		Int("iterations", res.Iterations).
		Int("arcs", len(arcs)).
		Msg("solved")

	var b strings.Builder
	fmt.Fprintf(&b, "Total flow: %d\nTotal cost: %d\n", res.Flow, res.Cost)
	for _, a := range arcs {
		fmt.Fprintf(&b, "%s => %s: %d\n", a.From, a.To, a.Flow)
	}
	_, r.err = io.WriteString(r.w, b.String())

	return r.err
}

func (r *Reporter) pathString(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		name := ""
		if r.names != nil {
			name = r.names.Name(v)
		}
		if name == "" {
			name = fmt.Sprintf("%d", v)
		}
		parts[i] = name
	}

	return strings.Join(parts, " → ")
}
