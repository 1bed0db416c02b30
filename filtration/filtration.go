package filtration

import (
	"fmt"

	"github.com/katalvlaran/jmapper/core"
	"github.com/katalvlaran/jmapper/curvature"
)

// Make returns a copy of g where each edge carries its value from values and
// each vertex carries the min (default) or max over its incident edges.
//
// Complexity: O(V + E) plus the clone.
func Make(g *core.Graph, values curvature.EdgeValues, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	edges := g.Edges()
	if len(edges) > 0 && len(values) == 0 {
		return nil, ErrNoCurvature
	}
	if len(values) != len(edges) {
		return nil, fmt.Errorf("%w: %d values for %d edges", ErrValueMismatch, len(values), len(edges))
	}

	pool := Max
	if o.UseMin {
		pool = Min
	}

	out := g.Clone()
	incident := make(map[string][]float64, g.VertexCount())
	for _, e := range edges {
		v, ok := values[e.ID]
		if !ok {
			return nil, fmt.Errorf("%w: no value for edge %s", ErrValueMismatch, e.ID)
		}
		if err := out.SetEdgeAttr(e.ID, o.Attribute, v); err != nil {
			return nil, err
		}
		incident[e.From] = append(incident[e.From], v)
		incident[e.To] = append(incident[e.To], v)
	}

	for _, id := range out.Vertices() {
		value := IsolatedValue
		if vs := incident[id]; len(vs) > 0 {
			value = pool(vs)
		}
		if err := out.SetVertexAttr(id, o.Attribute, value); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// PropagateEdgesToVertices writes attr on every non-isolated vertex of g as
// pool over the attr values of its incident edges. Isolated vertices are
// left untouched. A nil pool selects Sum.
func PropagateEdgesToVertices(g *core.Graph, attr string, pool Pool) error {
	if g == nil {
		return ErrGraphNil
	}
	if pool == nil {
		pool = Sum
	}
	src := g.EdgeAttrs(attr)
	incident := make(map[string][]float64)
	for _, e := range g.Edges() {
		v, ok := src[e.ID]
		if !ok {
			return fmt.Errorf("%w: edge %s has no %q", ErrMissingAttribute, e.ID, attr)
		}
		incident[e.From] = append(incident[e.From], v)
		incident[e.To] = append(incident[e.To], v)
	}
	for id, vs := range incident {
		if err := g.SetVertexAttr(id, attr, pool(vs)); err != nil {
			return err
		}
	}

	return nil
}

// PropagateVerticesToEdges writes attr on every edge of g as pool over the
// attr values of its two endpoints. A nil pool selects Max.
func PropagateVerticesToEdges(g *core.Graph, attr string, pool Pool) error {
	if g == nil {
		return ErrGraphNil
	}
	if pool == nil {
		pool = Max
	}
	src := g.VertexAttrs(attr)
	for _, e := range g.Edges() {
		a, okA := src[e.From]
		b, okB := src[e.To]
		if !okA || !okB {
			return fmt.Errorf("%w: endpoint of edge %s has no %q", ErrMissingAttribute, e.ID, attr)
		}
		if err := g.SetEdgeAttr(e.ID, attr, pool([]float64{a, b})); err != nil {
			return err
		}
	}

	return nil
}
