package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jmapper/core"
)

// buildPath constructs A-B-C with memberships and attributes.
func buildPath(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	ab, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C")
	require.NoError(t, err)
	require.NoError(t, g.SetMembership("A", []int{1, 2}))
	require.NoError(t, g.SetVertexAttr("A", "f", 1))
	require.NoError(t, g.SetEdgeAttr(ab, "f", 2))

	return g
}

func TestClone_DeepCopy(t *testing.T) {
	g := buildPath(t)
	c := g.Clone()

	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())

	// Mutating the clone leaves the source alone.
	require.NoError(t, c.SetVertexAttr("A", "f", 9))
	require.NoError(t, c.SetEdgeAttr("e1", "f", 9))
	require.NoError(t, c.SetMembership("A", []int{7}))
	v, _ := g.VertexAttr("A", "f")
	assert.Equal(t, 1.0, v)
	ev, _ := g.EdgeAttr("e1", "f")
	assert.Equal(t, 2.0, ev)
	m, _ := g.Membership("A")
	assert.Equal(t, []int{1, 2}, m)

	// Edge sequence continues on the clone.
	eid, err := c.AddEdge("A", "C")
	require.NoError(t, err)
	assert.Equal(t, "e3", eid)
}

func TestInducedSubgraph(t *testing.T) {
	g := buildPath(t)
	sub := core.InducedSubgraph(g, func(id string) bool { return id != "C" })

	assert.Equal(t, []string{"A", "B"}, sub.Vertices())
	require.Equal(t, 1, sub.EdgeCount())
	assert.True(t, sub.HasEdge("A", "B"))
	assert.False(t, sub.HasVertex("C"))
	assert.Equal(t, 2, g.EdgeCount(), "source unchanged")
}
