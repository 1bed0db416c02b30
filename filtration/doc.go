// Package filtration turns per-edge values into a node filtration: every
// edge of a copy of the graph is tagged with its value and every vertex with
// the minimum (or maximum) value over its incident edges.
//
// Make never mutates its input graph; calling it twice with the same inputs
// yields attribute-identical graphs. A vertex without incident edges has
// nothing to pool and is tagged with IsolatedValue (0).
//
// The package also exposes the two generic propagation helpers used around
// filtrations, PropagateEdgesToVertices and PropagateVerticesToEdges. Unlike
// Make they work in place and take a Pool to condense the incident values.
//
// Errors:
//
//	ErrGraphNil         – nil graph
//	ErrNoCurvature      – no values supplied for a graph with edges
//	ErrValueMismatch    – a value is missing for an edge, or names no edge
//	ErrMissingAttribute – a propagation source attribute is absent
package filtration
