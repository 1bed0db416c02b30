package curvature_test

import (
	"fmt"

	"github.com/katalvlaran/jmapper/core"
	"github.com/katalvlaran/jmapper/curvature"
)

// ExampleCompute computes Ollivier-Ricci curvature on a triangle with a tail.
func ExampleCompute() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("A", "C")
	_, _ = g.AddEdge("C", "D")

	vals, err := curvature.Compute(g, curvature.OllivierRicci{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s-%s %.3f\n", e.From, e.To, vals[e.ID])
	}

	// Output:
	// A-B 0.500
	// B-C 0.333
	// A-C 0.333
	// C-D 0.000
}
