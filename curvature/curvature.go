package curvature

import (
	"fmt"

	"github.com/katalvlaran/jmapper/core"
)

// Compute runs fn on g and enforces the result contract. A nil fn selects
// OllivierRicci{}.
//
// Errors:
//   - ErrGraphNil, ErrNoCurvature (no edges), ErrLengthMismatch, or the
//     strategy's own error wrapped with its name.
func Compute(g *core.Graph, fn Func) (EdgeValues, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if fn == nil {
		fn = OllivierRicci{}
	}
	if g.EdgeCount() == 0 {
		return nil, fmt.Errorf("%w: graph has no edges", ErrNoCurvature)
	}
	values, err := fn.Compute(g)
	if err != nil {
		return nil, fmt.Errorf("curvature: %s: %w", fn.Name(), err)
	}
	if err = Validate(g, values); err != nil {
		return nil, err
	}

	return values, nil
}

// Forman is the combinatorial Forman curvature of an unweighted graph.
type Forman struct{}

// Name implements Func.
func (Forman) Name() string { return "forman" }

// Compute implements Func.
func (Forman) Compute(g *core.Graph) (EdgeValues, error) {
	edges := g.Edges()
	out := make(EdgeValues, len(edges))
	for _, e := range edges {
		du, err := g.Degree(e.From)
		if err != nil {
			return nil, err
		}
		dv, err := g.Degree(e.To)
		if err != nil {
			return nil, err
		}
		out[e.ID] = float64(4 - du - dv)
	}

	return out, nil
}
