package persistence

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/jmapper/core"
	"github.com/katalvlaran/jmapper/unionfind"
)

// Calculate returns the 0-dimensional persistence diagram of g, reading
// filtration values from edge attribute edgeAttr and vertex attribute
// vertexAttr.
//
// Complexity: O(V log V + E log E + E·α(V)).
func Calculate(g *core.Graph, edgeAttr, vertexAttr string, opts ...Option) (Diagram, error) {
	d, err := CalculateDiagrams(g, edgeAttr, vertexAttr, opts...)
	if err != nil {
		return nil, err
	}

	return d.H0, nil
}

// CalculateDiagrams runs the sweep once and returns both the H0 diagram and
// the H1 cycle creators.
func CalculateDiagrams(g *core.Graph, edgeAttr, vertexAttr string, opts ...Option) (Diagrams, error) {
	if g == nil {
		return Diagrams{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Diagrams{}, o.err
	}

	s, err := newSweep(g, edgeAttr, vertexAttr, o.Order)
	if err != nil {
		return Diagrams{}, err
	}

	return s.run(), nil
}

// sweep holds vertices in filtration order and the edges to visit.
type sweep struct {
	order  Order
	values []float64 // vertex value by position
	edges  []sweepEdge
}

type sweepEdge struct {
	u, v  int
	value float64
}

func newSweep(g *core.Graph, edgeAttr, vertexAttr string, order Order) (*sweep, error) {
	ids := g.Vertices()
	if len(ids) == 0 {
		return nil, ErrEmptyGraph
	}
	vattrs := g.VertexAttrs(vertexAttr)
	for _, id := range ids {
		if _, ok := vattrs[id]; !ok {
			return nil, fmt.Errorf("%w: vertex %s has no %q", ErrMissingAttribute, id, vertexAttr)
		}
	}

	// Vertices() is sorted, so a stable sort by value yields (value, id) order.
	slices.SortStableFunc(ids, func(a, b string) int {
		return order.compare(vattrs[a], vattrs[b])
	})
	pos := make(map[string]int, len(ids))
	s := &sweep{order: order, values: make([]float64, len(ids))}
	for i, id := range ids {
		pos[id] = i
		s.values[i] = vattrs[id]
	}

	eattrs := g.EdgeAttrs(edgeAttr)
	for _, e := range g.Edges() {
		value, ok := eattrs[e.ID]
		if !ok {
			return nil, fmt.Errorf("%w: edge %s has no %q", ErrMissingAttribute, e.ID, edgeAttr)
		}
		s.edges = append(s.edges, sweepEdge{u: pos[e.From], v: pos[e.To], value: value})
	}
	slices.SortStableFunc(s.edges, func(a, b sweepEdge) int {
		return order.compare(a.value, b.value)
	})

	return s, nil
}

func (s *sweep) run() Diagrams {
	uf := unionfind.New(len(s.values))
	var out Diagrams
	for _, e := range s.edges {
		younger, older := uf.Find(e.u), uf.Find(e.v)
		if younger == older {
			out.H1 = append(out.H1, Pair{Birth: e.value, Death: math.Inf(1)})
			continue
		}
		if s.order.compare(s.values[younger], s.values[older]) < 0 {
			younger, older = older, younger
		}
		out.H0 = append(out.H0, Pair{Birth: s.values[younger], Death: e.value})
		uf.Merge(younger, older)
	}
	for root := range uf.Roots() {
		out.H0 = append(out.H0, Pair{Birth: s.values[root], Death: math.Inf(1)})
	}

	return out
}

// compare orders a before b in the sweep direction.
func (o Order) compare(a, b float64) int {
	if o == Superlevel {
		return cmp.Compare(b, a)
	}

	return cmp.Compare(a, b)
}
