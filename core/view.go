// File: view.go
// Role: Non-mutating copies: Clone and InducedSubgraph.
// Determinism:
//   - Vertex IDs, edge IDs and creation order are preserved.
// Concurrency:
//   - Both read locks on the source (muVert -> muEdgeAdj) for one consistent
//     snapshot; the result is a fresh graph instance.

package core

import (
	"maps"
	"slices"
	"sync/atomic"
)

// Clone returns a deep copy of g: vertices, memberships, edges, adjacency and
// all attributes. The edge sequence carries over so AddEdge on the clone never
// reuses an ID.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return InducedSubgraph(g, nil)
}

// InducedSubgraph returns a new graph holding the vertices for which keep
// returns true and every edge whose endpoints are both kept. A nil keep keeps
// everything. The input graph is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep func(id string) bool) *Graph {
	out := NewGraph()
	kept := func(id string) bool { return keep == nil || keep(id) }

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for id, v := range g.vertices {
		if !kept(id) {
			continue
		}
		out.vertices[id] = &Vertex{ID: id, Membership: slices.Clone(v.Membership)}
		out.adjacency[id] = make(map[string]string)
		if attrs, ok := g.vertexAttrs[id]; ok {
			out.vertexAttrs[id] = maps.Clone(attrs)
		}
	}
	for eid, e := range g.edges {
		if !kept(e.From) || !kept(e.To) {
			continue
		}
		out.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, seq: e.seq}
		out.adjacency[e.From][e.To] = eid
		out.adjacency[e.To][e.From] = eid
		if attrs, ok := g.edgeAttrs[eid]; ok {
			out.edgeAttrs[eid] = maps.Clone(attrs)
		}
	}
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	return out
}
