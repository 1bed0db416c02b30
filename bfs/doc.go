// Package bfs provides breadth-first search over a *core.Graph.
//
// jmapper uses it to measure hop distances on nerve graphs: the transport
// cost between the neighbourhoods of an edge's endpoints in Ollivier-Ricci
// curvature is the unweighted shortest-path length between vertices.
//
//	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(3))
//	res.Depth["C"] // hops from A to C
//
// Options:
//
//	WithContext(ctx)        – cancellation, checked once per dequeue
//	WithMaxDepth(d)         – stop expanding beyond depth d (0 = unlimited)
//	WithOnVisit(fn)         – hook called per visited vertex; an error aborts
//	WithFilterNeighbor(fn)  – skip curr→neighbor steps
//
// Errors:
//
//	ErrGraphNil            – nil graph
//	ErrStartVertexNotFound – start vertex absent
//	ErrOptionViolation     – invalid option (e.g. negative depth)
//	ErrNeighbors           – neighbor lookup failed mid-walk
package bfs
