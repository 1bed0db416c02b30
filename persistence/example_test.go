package persistence_test

import (
	"fmt"

	"github.com/katalvlaran/jmapper/core"
	"github.com/katalvlaran/jmapper/curvature"
	"github.com/katalvlaran/jmapper/filtration"
	"github.com/katalvlaran/jmapper/persistence"
)

// ExampleCalculate computes the H0 diagram of a path plus an isolated vertex.
func ExampleCalculate() {
	g := core.NewGraph()
	e1, _ := g.AddEdge("A", "B")
	e2, _ := g.AddEdge("B", "C")
	_ = g.AddVertex("D")

	fg, _ := filtration.Make(g, curvature.EdgeValues{e1: 0.2, e2: 0.7})
	d, err := persistence.Calculate(fg, filtration.DefaultAttribute, filtration.DefaultAttribute)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range d {
		fmt.Printf("(%g, %g)\n", p.Birth, p.Death)
	}

	// Output:
	// (0.2, 0.2)
	// (0.7, 0.7)
	// (0, +Inf)
	// (0.2, +Inf)
}
