package unionfind

import "iter"

// UnionFind is a disjoint-set forest with path compression.
// It is not safe for concurrent use.
type UnionFind struct {
	parent []int
}

// New returns n singleton components 0..n-1. Negative n is treated as 0.
// Complexity: O(n).
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &UnionFind{parent: parent}
}

// Len returns the number of vertices.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Valid reports whether u is inside 0..Len()-1.
func (uf *UnionFind) Valid(u int) bool { return u >= 0 && u < len(uf.parent) }

// Find returns the root of u's component and points every vertex on the path
// directly at that root.
// Complexity: O(log n) amortized.
func (uf *UnionFind) Find(u int) int {
	root := u
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// Second pass: path compression.
	for uf.parent[u] != root {
		next := uf.parent[u]
		uf.parent[u] = root
		u = next
	}

	return root
}

// Merge merges u's component into v's component: the root of u is
// re-parented to the root of v. Merging a component with itself is a no-op.
func (uf *UnionFind) Merge(u, v int) {
	ru, rv := uf.Find(u), uf.Find(v)
	if ru == rv {
		return
	}
	uf.parent[ru] = rv
}

// Connected reports whether u and v share a root.
func (uf *UnionFind) Connected(u, v int) bool {
	return uf.Find(u) == uf.Find(v)
}

// Roots yields every vertex that is its own parent, in ascending order.
// The sequence is lazy and may be ranged over any number of times; it
// reflects the state at iteration time.
func (uf *UnionFind) Roots() iter.Seq[int] {
	return func(yield func(int) bool) {
		for v, p := range uf.parent {
			if v == p && !yield(v) {
				return
			}
		}
	}
}

// Component returns, in ascending order, all vertices whose root is root.
// A vertex that is not a root yields an empty component.
// Complexity: O(n) amortized.
func (uf *UnionFind) Component(root int) []int {
	var out []int
	if !uf.Valid(root) || uf.parent[root] != root {
		return out
	}
	for v := range uf.parent {
		if uf.Find(v) == root {
			out = append(out, v)
		}
	}

	return out
}

// Count returns the number of components.
func (uf *UnionFind) Count() int {
	n := 0
	for range uf.Roots() {
		n++
	}

	return n
}
