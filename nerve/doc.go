// Package nerve turns a cover of a dataset into its nerve graph.
//
// A cover maps cluster ids to the member indices of each cluster; clusters may
// overlap. The nerve has one vertex per cluster and an edge between two
// clusters whenever their member sets share at least MinIntersection points.
// Every vertex carries its member set (core.Graph.Membership) and every edge
// carries the overlap size under the IntersectionAttr attribute.
//
// Construction and component analysis are separate steps:
//
//	n, err := nerve.Build(cover, nerve.WithMinIntersection(2))
//	if errors.Is(err, nerve.ErrEmptyComplex) { ... }
//	comps := n.Components() // computed on first call, then cached
//
// Component indices follow discovery order over the sorted vertex IDs: the
// component holding the lexicographically smallest vertex is 0, and so on.
// The order is an implementation detail of this package and is only stable
// for the lifetime of one Nerve.
package nerve
