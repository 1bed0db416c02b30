package nerve_test

import (
	"fmt"

	"github.com/katalvlaran/jmapper/nerve"
)

// ExampleBuild builds the nerve of a three-cluster cover with one overlap.
func ExampleBuild() {
	n, err := nerve.Build(nerve.Cover{
		"A": {1, 2, 3},
		"B": {3, 4, 5},
		"C": {6, 7},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range n.Graph().Edges() {
		fmt.Printf("%s-%s\n", e.From, e.To)
	}
	for _, c := range n.Components() {
		fmt.Println(c.Index, c.Graph.Vertices())
	}

	// Output:
	// A-B
	// 0 [A B]
	// 1 [C]
}
