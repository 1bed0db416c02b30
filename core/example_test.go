package core_test

import (
	"fmt"

	"github.com/katalvlaran/jmapper/core"
)

// ExampleGraph demonstrates basic creation, attributes and cloning.
func ExampleGraph() {
	g := core.NewGraph()
	eid, _ := g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_ = g.SetMembership("A", []int{3, 1, 2})
	_ = g.SetEdgeAttr(eid, "curvature", 0.5)

	c := g.Clone()
	_ = c.SetEdgeAttr(eid, "curvature", -1)

	m, _ := g.Membership("A")
	orig, _ := g.EdgeAttr(eid, "curvature")
	cloned, _ := c.EdgeAttr(eid, "curvature")
	fmt.Println(g.Vertices(), g.EdgeCount())
	fmt.Println(m)
	fmt.Println(orig, cloned)

	// Output:
	// [A B C] 2
	// [1 2 3]
	// 0.5 -1
}
