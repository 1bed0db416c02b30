package persistence_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/jmapper/core"
	"github.com/katalvlaran/jmapper/curvature"
	"github.com/katalvlaran/jmapper/filtration"
	"github.com/katalvlaran/jmapper/persistence"
)

// BenchmarkCalculateDiagrams sweeps a random filtered graph with 1000
// vertices and up to 5000 edges.
func BenchmarkCalculateDiagrams(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	g := core.NewGraph()
	values := curvature.EdgeValues{}
	for i := 0; i < 5000; i++ {
		u, v := r.Intn(1000), r.Intn(1000)
		if u == v {
			continue
		}
		eid, err := g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v))
		if err == nil {
			values[eid] = r.Float64()
		}
	}
	fg, err := filtration.Make(g, values)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = persistence.CalculateDiagrams(fg, filtration.DefaultAttribute, filtration.DefaultAttribute)
	}
}
