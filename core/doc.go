// Package core provides the thread-safe in-memory graph that every jmapper
// stage reads and writes: nerve construction, curvature, filtration and
// persistence all exchange *core.Graph values.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, simple: no self-loops, no parallel edges.
//   - Vertices are identified by non-empty strings (cluster ids of a cover)
//     and may carry a Membership set (the member indices of that cluster).
//   - Vertices and edges carry named float64 attributes ("curvature",
//     "intersection", ...). Attributes live on the graph instance that owns
//     the element; Clone deep-copies them.
//   - Edges receive stable textual IDs "e1", "e2", ... in creation order.
//
// Determinism:
//
//	Vertices()      – sorted lexicographically ascending.
//	Edges()         – creation order (the order AddEdge succeeded in).
//	Neighbors(id)   – creation order of the incident edges.
//	NeighborIDs(id) – unique, sorted lexicographically ascending.
//
// Concurrency:
//
//	muVert guards the vertex catalog, memberships and vertex attributes;
//	muEdgeAdj guards edges, adjacency and edge attributes. Lock order is
//	always muVert -> muEdgeAdj.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop requested
//	ErrMultiEdgeNotAllowed – a second edge between the same endpoints
//	ErrAttributeNotFound   – attribute absent on a vertex or edge
package core
