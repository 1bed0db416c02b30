// Package persistence computes persistence diagrams of a filtered graph.
//
// The graph must carry a scalar attribute on every vertex and every edge, as
// produced by filtration.Make. The sweep is the classic union-find pass for
// 0-dimensional homology:
//
//  1. Vertices are ordered by (value, id) and each one is born as a
//     singleton component at its value.
//  2. Edges are visited by value (stable: ties keep edge creation order).
//     An edge joining two components kills the younger one at the edge's
//     value and merges it into the older one. An edge inside a single
//     component closes a cycle and is recorded in the H1 diagram.
//  3. Components alive at the end get death +Inf.
//
// Sublevel order (default) sweeps ascending; Superlevel sweeps descending so
// that max-pooled filtrations still produce death on the far side of birth.
//
// Errors:
//
//	ErrGraphNil         – nil graph
//	ErrEmptyGraph       – graph without vertices
//	ErrMissingAttribute – a vertex or edge lacks the named attribute
//	ErrInvalidOrder     – unknown sweep order
package persistence
