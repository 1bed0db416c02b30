package persistence

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for persistence computation.
var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("persistence: graph is nil")

	// ErrEmptyGraph is returned for a graph without vertices.
	ErrEmptyGraph = errors.New("persistence: graph has no vertices")

	// ErrMissingAttribute is returned when a vertex or edge has no filtration value.
	ErrMissingAttribute = errors.New("persistence: filtration attribute missing")

	// ErrInvalidOrder is returned for an unknown Order.
	ErrInvalidOrder = errors.New("persistence: invalid sweep order")
)

// Order is the direction of the filtration sweep.
type Order int

const (
	// Sublevel sweeps values in ascending order.
	Sublevel Order = iota
	// Superlevel sweeps values in descending order.
	Superlevel
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case Sublevel:
		return "sublevel"
	case Superlevel:
		return "superlevel"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps "sublevel" / "superlevel" to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "sublevel":
		return Sublevel, nil
	case "superlevel":
		return Superlevel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOrder, s)
	}
}

// Pair is one topological feature.
type Pair struct {
	Birth float64 `yaml:"birth"`
	Death float64 `yaml:"death"`
}

// Essential reports whether the feature never dies.
func (p Pair) Essential() bool { return math.IsInf(p.Death, 0) }

// Persistence returns |Death − Birth|; +Inf for essential features.
func (p Pair) Persistence() float64 {
	if p.Essential() {
		return math.Inf(1)
	}

	return math.Abs(p.Death - p.Birth)
}

// Diagram is an ordered sequence of (birth, death) pairs.
type Diagram []Pair

// Len returns the number of pairs.
func (d Diagram) Len() int { return len(d) }

// Finite returns the pairs with a finite death, in order.
func (d Diagram) Finite() Diagram {
	out := make(Diagram, 0, len(d))
	for _, p := range d {
		if !p.Essential() {
			out = append(out, p)
		}
	}

	return out
}

// Essential returns the pairs that never die, in order.
func (d Diagram) Essential() Diagram {
	out := make(Diagram, 0)
	for _, p := range d {
		if p.Essential() {
			out = append(out, p)
		}
	}

	return out
}

// Persistence returns the lifetime of every pair.
func (d Diagram) Persistence() []float64 {
	out := make([]float64, len(d))
	for i, p := range d {
		out[i] = p.Persistence()
	}

	return out
}

// Total returns the summed lifetime of the finite pairs.
func (d Diagram) Total() float64 {
	return floats.Sum(d.Finite().Persistence())
}

// Diagrams holds the diagrams of both dimensions.
type Diagrams struct {
	// H0 tracks connected components.
	H0 Diagram `yaml:"h0"`
	// H1 holds one essential pair per cycle-closing edge.
	H1 Diagram `yaml:"h1"`
}

// Options configures the sweep.
type Options struct {
	Order Order

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns a Sublevel sweep.
func DefaultOptions() Options { return Options{Order: Sublevel} }

// WithOrder selects the sweep direction.
func WithOrder(o Order) Option {
	return func(opts *Options) {
		if o != Sublevel && o != Superlevel {
			opts.err = fmt.Errorf("%w: %d", ErrInvalidOrder, int(o))
			return
		}
		opts.Order = o
	}
}
