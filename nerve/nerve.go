package nerve

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/jmapper/core"
	"github.com/katalvlaran/jmapper/unionfind"
)

// Component is one connected component of a nerve, as an independent graph.
type Component struct {
	Index int
	Graph *core.Graph
}

// Nerve is a validated nerve graph together with its lazily computed
// component decomposition.
type Nerve struct {
	graph           *core.Graph
	minIntersection int

	once       sync.Once
	components []Component
	index      map[string]int // vertex ID → component index
}

// Build validates cover and constructs its nerve.
//
// Errors:
//   - ErrEmptyComplex: len(cover) == 0.
//   - core.ErrEmptyVertexID: a cluster id is "".
//   - ErrEmptyCluster: a cluster has no members.
//   - ErrInvalidMinIntersection: from WithMinIntersection.
//
// Complexity: O(K²·m) for K clusters of at most m members.
func Build(cover Cover, opts ...Option) (*Nerve, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(cover) == 0 {
		return nil, ErrEmptyComplex
	}

	ids := make([]string, 0, len(cover))
	for id := range cover {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	g := core.NewGraph()
	members := make([][]int, len(ids))
	for i, id := range ids {
		if len(cover[id]) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyCluster, id)
		}
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
		if err := g.SetMembership(id, cover[id]); err != nil {
			return nil, err
		}
		members[i], _ = g.Membership(id)
	}

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			k := Intersection(members[i], members[j])
			if k < o.MinIntersection {
				continue
			}
			eid, err := g.AddEdge(ids[i], ids[j])
			if err != nil {
				return nil, err
			}
			if err = g.SetEdgeAttr(eid, IntersectionAttr, float64(k)); err != nil {
				return nil, err
			}
		}
	}

	return &Nerve{graph: g, minIntersection: o.MinIntersection}, nil
}

// Graph returns the nerve graph. Callers that need to mutate it should Clone
// it first; the component snapshot is not refreshed.
func (n *Nerve) Graph() *core.Graph { return n.graph }

// MinIntersection returns the overlap threshold the nerve was built with.
func (n *Nerve) MinIntersection() int { return n.minIntersection }

// Components returns the connected components of the nerve, computing them on
// the first call. The returned slice is shared; treat it as read-only.
func (n *Nerve) Components() []Component {
	n.once.Do(n.computeComponents)

	return n.components
}

// NumComponents returns the number of connected components.
func (n *Nerve) NumComponents() int {
	return len(n.Components())
}

// ComponentIndex returns the index of the component containing vertex id.
func (n *Nerve) ComponentIndex(id string) (int, error) {
	n.once.Do(n.computeComponents)
	idx, ok := n.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}

	return idx, nil
}

// computeComponents merges the endpoints of every edge in a union-find over
// the sorted vertex order and numbers the roots by first appearance.
func (n *Nerve) computeComponents() {
	ids := n.graph.Vertices()
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	uf := unionfind.New(len(ids))
	for _, e := range n.graph.Edges() {
		uf.Merge(pos[e.From], pos[e.To])
	}

	rootIndex := make(map[int]int)
	n.index = make(map[string]int, len(ids))
	for i, id := range ids {
		root := uf.Find(i)
		idx, seen := rootIndex[root]
		if !seen {
			idx = len(rootIndex)
			rootIndex[root] = idx
		}
		n.index[id] = idx
	}

	n.components = make([]Component, len(rootIndex))
	for idx := range n.components {
		want := idx
		n.components[idx] = Component{
			Index: idx,
			Graph: core.InducedSubgraph(n.graph, func(id string) bool { return n.index[id] == want }),
		}
	}
}

// Intersection returns |a ∩ b| for sorted, duplicate-free slices.
// Complexity: O(len(a)+len(b)).
func Intersection(a, b []int) int {
	count := 0
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] == b[j]:
			count++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return count
}

// Overlap returns the overlap cardinality of the member sets of clusters a and b.
func (n *Nerve) Overlap(a, b string) (int, error) {
	ma, err := n.graph.Membership(a)
	if err != nil {
		return 0, err
	}
	mb, err := n.graph.Membership(b)
	if err != nil {
		return 0, err
	}

	return Intersection(ma, mb), nil
}

// Members returns the sorted member set of cluster id.
func (n *Nerve) Members(id string) ([]int, error) {
	return n.graph.Membership(id)
}
