package unionfind_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jmapper/unionfind"
)

func TestNew_Singletons(t *testing.T) {
	uf := unionfind.New(4)
	assert.Equal(t, 4, uf.Len())
	assert.Equal(t, []int{0, 1, 2, 3}, slices.Collect(uf.Roots()))
	for v := 0; v < 4; v++ {
		assert.Equal(t, v, uf.Find(v))
	}
	assert.Equal(t, 0, unionfind.New(-3).Len())
}

func TestMerge_Asymmetric(t *testing.T) {
	uf := unionfind.New(3)
	uf.Merge(0, 1)
	assert.Equal(t, 1, uf.Find(0), "root of u goes under root of v")

	uf.Merge(2, 0)
	assert.Equal(t, 1, uf.Find(2), "merges into the component of v, not v itself")

	uf.Merge(1, 1) // no-op
	assert.Equal(t, []int{1}, slices.Collect(uf.Roots()))
}

func TestFind_PathCompression(t *testing.T) {
	uf := unionfind.New(5)
	// Chain 0→1→2→3→4.
	for i := 0; i < 4; i++ {
		uf.Merge(i, i+1)
	}
	assert.Equal(t, 4, uf.Find(0))
	// Every vertex of the chain now reports root 4.
	assert.Equal(t, []int{0, 1, 2, 3, 4}, uf.Component(4))
}

func TestRoots_Restartable(t *testing.T) {
	uf := unionfind.New(4)
	uf.Merge(0, 3)
	first := slices.Collect(uf.Roots())
	second := slices.Collect(uf.Roots())
	assert.Equal(t, []int{1, 2, 3}, first)
	assert.Equal(t, first, second)

	// Early break is honoured.
	for r := range uf.Roots() {
		assert.Equal(t, 1, r)
		break
	}
	assert.Equal(t, 3, uf.Count())
}

func TestComponent(t *testing.T) {
	uf := unionfind.New(6)
	uf.Merge(0, 2)
	uf.Merge(4, 2)
	uf.Merge(1, 5)

	assert.Equal(t, []int{0, 2, 4}, uf.Component(2))
	assert.Equal(t, []int{1, 5}, uf.Component(5))
	assert.Equal(t, []int{3}, uf.Component(3))
	assert.Empty(t, uf.Component(0), "non-root")
	assert.Empty(t, uf.Component(42), "out of range")
}

// TestMerge_MatchesReference checks Find equivalence against a naive
// label-propagation reference after random merges.
func TestMerge_MatchesReference(t *testing.T) {
	const n = 60
	r := rand.New(rand.NewSource(7))
	uf := unionfind.New(n)
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	for k := 0; k < 80; k++ {
		u, v := r.Intn(n), r.Intn(n)
		uf.Merge(u, v)
		from, to := label[u], label[v]
		for i := range label {
			if label[i] == from {
				label[i] = to
			}
		}
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			require.Equal(t, label[u] == label[v], uf.Connected(u, v), "u=%d v=%d", u, v)
		}
	}
	assert.True(t, uf.Valid(0))
	assert.False(t, uf.Valid(n))
}
