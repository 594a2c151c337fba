package network

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/mcmf/flow"
)

// ErrInvalidProblem wraps every rejection of a Problem description. It matches
// flow.ErrInvalidArgument as well.
var ErrInvalidProblem = fmt.Errorf("%w: invalid problem", flow.ErrInvalidArgument)

// Node is one logical station of a network. Capacity bounds the total flow
// that may pass through it.
type Node struct {
	Name     string `yaml:"name" validate:"required,node_name"`
	Capacity int64  `yaml:"capacity" validate:"gte=0"`
}

// Problem describes a min-cost flow instance over named nodes.
//
// Capacity[i][j] and Cost[i][j] describe the direct connection from Nodes[i]
// to Nodes[j]. A nil entry means "no connection"; zero capacities and the
// diagonal are ignored. Both matrices must be len(Nodes)×len(Nodes).
type Problem struct {
	Nodes    []Node     `yaml:"nodes" validate:"required,min=1,dive"`
	Capacity [][]*int64 `yaml:"capacity" validate:"required"`
	Cost     [][]*int64 `yaml:"cost" validate:"required"`
	Source   string     `yaml:"source" validate:"required"`
	Sink     string     `yaml:"sink" validate:"required"`
}

var nodeName = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)

// validate is shared by every Problem; validator caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// hyphens are reserved for the -in/-out suffixes of split vertices
	mustRegister(v, "node_name", func(fl validator.FieldLevel) bool {
		return nodeName.MatchString(fl.Field().String())
	})

	return v
}

// mustRegister panics when a custom tag cannot be registered, so a broken tag
// fails at package init instead of silently skipping validation.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("network: register validation %q: %v", tag, err))
	}
}

// Validate checks the struct tags and the matrix shape and contents. It
// returns nil or an error wrapping ErrInvalidProblem.
func (p *Problem) Validate() error {
	if err := validate.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fieldMessage(fe))
			}

			return fmt.Errorf("%w: %s", ErrInvalidProblem, strings.Join(msgs, "; "))
		}

		return fmt.Errorf("%w: %v", ErrInvalidProblem, err)
	}

	index := make(map[string]int, len(p.Nodes))
	for i, nd := range p.Nodes {
		if j, dup := index[nd.Name]; dup {
			return fmt.Errorf("%w: node %q listed at %d and %d", ErrInvalidProblem, nd.Name, j, i)
		}
		index[nd.Name] = i
	}
	src, ok := index[p.Source]
	if !ok {
		return fmt.Errorf("%w: unknown source %q", ErrInvalidProblem, p.Source)
	}
	dst, ok := index[p.Sink]
	if !ok {
		return fmt.Errorf("%w: unknown sink %q", ErrInvalidProblem, p.Sink)
	}
	if src == dst {
		return fmt.Errorf("%w: %q", flow.ErrSourceEqualsSink, p.Source)
	}

	n := len(p.Nodes)
	if err := checkSquare("capacity", p.Capacity, n); err != nil {
		return err
	}
	if err := checkSquare("cost", p.Cost, n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c, w := p.Capacity[i][j], p.Cost[i][j]
			if i == j || c == nil {
				continue
			}
			if *c < 0 {
				return fmt.Errorf("%w: negative capacity %d on %s→%s", ErrInvalidProblem, *c, p.Nodes[i].Name, p.Nodes[j].Name)
			}
			if *c == 0 {
				continue
			}
			if w == nil {
				return fmt.Errorf("%w: %s→%s has a capacity but no cost", ErrInvalidProblem, p.Nodes[i].Name, p.Nodes[j].Name)
			}
			if *w < 0 {
				return fmt.Errorf("%w: negative cost %d on %s→%s", ErrInvalidProblem, *w, p.Nodes[i].Name, p.Nodes[j].Name)
			}
		}
	}

	return nil
}

func checkSquare(what string, m [][]*int64, n int) error {
	if len(m) != n {
		return fmt.Errorf("%w: %s matrix has %d rows, want %d", ErrInvalidProblem, what, len(m), n)
	}
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: %s row %d has %d entries, want %d", ErrInvalidProblem, what, i, len(row), n)
		}
	}

	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", fe.Namespace(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s (got %v)", fe.Namespace(), fe.Param(), fe.Value())
	case "node_name":
		return fmt.Sprintf("%s %q may only contain letters, digits, '_' and '.'", fe.Namespace(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
	}
}

// Int64 returns a pointer to v, for building matrices in code.
func Int64(v int64) *int64 { return &v }
