package filtration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jmapper/core"
	"github.com/katalvlaran/jmapper/curvature"
	"github.com/katalvlaran/jmapper/filtration"
)

// scenario returns the nerve of A{1,2,3}, B{3,4,5}, C{6,7}: edge A-B, C isolated.
func scenario(t *testing.T) (*core.Graph, string) {
	t.Helper()
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("C"))

	return g, eid
}

func TestMake_Scenario(t *testing.T) {
	g, eid := scenario(t)
	out, err := filtration.Make(g, curvature.EdgeValues{eid: 0.5})
	require.NoError(t, err)

	v, err := out.EdgeAttr(eid, filtration.DefaultAttribute)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
	assert.Equal(t, map[string]float64{"A": 0.5, "B": 0.5, "C": filtration.IsolatedValue},
		out.VertexAttrs(filtration.DefaultAttribute))
}

func TestMake_MinAndMax(t *testing.T) {
	g := core.NewGraph()
	e1, _ := g.AddEdge("A", "B")
	e2, _ := g.AddEdge("B", "C")
	values := curvature.EdgeValues{e1: -1, e2: 2}

	lo, err := filtration.Make(g, values, filtration.WithAttribute("k"))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": -1, "B": -1, "C": 2}, lo.VertexAttrs("k"))

	hi, err := filtration.Make(g, values, filtration.WithAttribute("k"), filtration.WithMax())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": -1, "B": 2, "C": 2}, hi.VertexAttrs("k"))
}

func TestMake_LeavesInputUntouched(t *testing.T) {
	g, eid := scenario(t)
	values := curvature.EdgeValues{eid: 0.25}

	first, err := filtration.Make(g, values)
	require.NoError(t, err)
	second, err := filtration.Make(g, values)
	require.NoError(t, err)

	assert.Empty(t, g.VertexAttrs(filtration.DefaultAttribute))
	assert.Empty(t, g.EdgeAttrs(filtration.DefaultAttribute))
	assert.Equal(t, first.VertexAttrs(filtration.DefaultAttribute), second.VertexAttrs(filtration.DefaultAttribute))
	assert.Equal(t, first.EdgeAttrs(filtration.DefaultAttribute), second.EdgeAttrs(filtration.DefaultAttribute))
}

func TestMake_IsolatedOnly(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("X"))
	out, err := filtration.Make(g, nil, filtration.WithMax())
	require.NoError(t, err)
	v, err := out.VertexAttr("X", filtration.DefaultAttribute)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestMake_Errors(t *testing.T) {
	_, err := filtration.Make(nil, nil)
	assert.ErrorIs(t, err, filtration.ErrGraphNil)

	g, eid := scenario(t)
	_, err = filtration.Make(g, nil)
	assert.ErrorIs(t, err, filtration.ErrNoCurvature)

	_, err = filtration.Make(g, curvature.EdgeValues{eid: 1, "e42": 2})
	assert.ErrorIs(t, err, filtration.ErrValueMismatch)

	_, err = filtration.Make(g, curvature.EdgeValues{"e42": 2})
	assert.ErrorIs(t, err, filtration.ErrValueMismatch)
}

func TestPropagateEdgesToVertices(t *testing.T) {
	g := core.NewGraph()
	e1, _ := g.AddEdge("A", "B")
	e2, _ := g.AddEdge("B", "C")
	require.NoError(t, g.AddVertex("D"))
	require.NoError(t, g.SetEdgeAttr(e1, "w", 1))
	require.NoError(t, g.SetEdgeAttr(e2, "w", 3))

	require.NoError(t, filtration.PropagateEdgesToVertices(g, "w", nil))
	assert.Equal(t, map[string]float64{"A": 1, "B": 4, "C": 3}, g.VertexAttrs("w"))

	require.NoError(t, filtration.PropagateEdgesToVertices(g, "w", filtration.Mean))
	assert.Equal(t, 2.0, g.VertexAttrs("w")["B"])

	_, _ = g.AddEdge("C", "D")
	err := filtration.PropagateEdgesToVertices(g, "w", nil)
	assert.ErrorIs(t, err, filtration.ErrMissingAttribute)
}

func TestPropagateVerticesToEdges(t *testing.T) {
	g := core.NewGraph()
	e1, _ := g.AddEdge("A", "B")
	require.NoError(t, g.SetVertexAttr("A", "deg", 1))
	require.NoError(t, g.SetVertexAttr("B", "deg", 5))

	require.NoError(t, filtration.PropagateVerticesToEdges(g, "deg", nil))
	v, err := g.EdgeAttr(e1, "deg")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	require.NoError(t, filtration.PropagateVerticesToEdges(g, "deg", filtration.Min))
	v, _ = g.EdgeAttr(e1, "deg")
	assert.Equal(t, 1.0, v)

	_, _ = g.AddEdge("B", "C")
	assert.ErrorIs(t, filtration.PropagateVerticesToEdges(g, "deg", nil), filtration.ErrMissingAttribute)
	assert.ErrorIs(t, filtration.PropagateVerticesToEdges(nil, "deg", nil), filtration.ErrGraphNil)
}
