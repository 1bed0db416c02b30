// Package unionfind implements a disjoint-set forest over the contiguous
// vertex range 0..n-1 with path compression.
//
// Merge is asymmetric on purpose: Merge(u, v) re-parents the root of u's
// component under the root of v's component. Persistence sweeps rely on this
// to keep the older component's root as the representative of a merge.
//
// The vertex range is fixed at construction; there is no insertion or
// removal. Calls with vertices outside the range panic like any slice index;
// use Valid to check untrusted input first.
//
//	uf := unionfind.New(4)
//	uf.Merge(0, 1)               // root(0) → root(1)
//	uf.Find(0) == uf.Find(1)     // true
//	for r := range uf.Roots() {} // 1, 2, 3
package unionfind
