package curvature

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/jmapper/core"
)

// Sentinel errors for curvature computation.
var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("curvature: graph is nil")

	// ErrNoCurvature is returned when no curvature can exist (no edges) or
	// none has been computed yet.
	ErrNoCurvature = errors.New("curvature: no curvature available")

	// ErrLengthMismatch is returned when a strategy's result does not cover
	// exactly the graph's edges. The result is discarded.
	ErrLengthMismatch = errors.New("curvature: result does not match edge count")

	// ErrInvalidAlpha is returned for an Ollivier-Ricci idleness outside [0, 1).
	ErrInvalidAlpha = errors.New("curvature: alpha must be in [0, 1)")

	// ErrTransport is returned when the optimal transport problem fails.
	ErrTransport = errors.New("curvature: transport problem failed")
)

// EdgeValues maps edge IDs to scalar values.
type EdgeValues map[string]float64

// Func is a curvature strategy: it accepts a graph and returns one value per
// edge. Implementations must not keep or read process-wide state.
type Func interface {
	Name() string
	Compute(g *core.Graph) (EdgeValues, error)
}

// Ordered returns the values aligned to g.Edges() order. Edges without a
// value are reported through ErrLengthMismatch.
func (v EdgeValues) Ordered(g *core.Graph) ([]float64, error) {
	if err := Validate(g, v); err != nil {
		return nil, err
	}
	edges := g.Edges()
	out := make([]float64, len(edges))
	for i, e := range edges {
		out[i] = v[e.ID]
	}

	return out, nil
}

// FromOrdered zips a positional sequence onto g.Edges() order.
func FromOrdered(g *core.Graph, values []float64) (EdgeValues, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	edges := g.Edges()
	if len(values) != len(edges) {
		return nil, fmt.Errorf("%w: got %d values for %d edges", ErrLengthMismatch, len(values), len(edges))
	}
	out := make(EdgeValues, len(edges))
	for i, e := range edges {
		out[e.ID] = values[i]
	}

	return out, nil
}

// Validate checks that values holds exactly one entry per edge of g.
func Validate(g *core.Graph, values EdgeValues) error {
	if g == nil {
		return ErrGraphNil
	}
	if n := g.EdgeCount(); len(values) != n {
		return fmt.Errorf("%w: got %d values for %d edges", ErrLengthMismatch, len(values), n)
	}
	for eid := range values {
		if _, err := g.GetEdge(eid); err != nil {
			return fmt.Errorf("%w: unknown edge %q", ErrLengthMismatch, eid)
		}
	}

	return nil
}

// funcOf adapts a positional function to Func.
type funcOf struct {
	name string
	fn   func(*core.Graph) ([]float64, error)
}

// FuncOf wraps fn, whose result is aligned to g.Edges(), as a named Func.
func FuncOf(name string, fn func(*core.Graph) ([]float64, error)) Func {
	return funcOf{name: name, fn: fn}
}

func (f funcOf) Name() string { return f.name }

func (f funcOf) Compute(g *core.Graph) (EdgeValues, error) {
	values, err := f.fn(g)
	if err != nil {
		return nil, err
	}

	return FromOrdered(g, values)
}
