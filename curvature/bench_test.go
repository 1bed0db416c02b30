package curvature_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/jmapper/core"
	"github.com/katalvlaran/jmapper/curvature"
)

// BenchmarkOllivierRicci measures curvature on a random sparse graph with
// 200 vertices and 600 edge attempts.
func BenchmarkOllivierRicci(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	g := core.NewGraph()
	for i := 0; i < 600; i++ {
		u, v := r.Intn(200), r.Intn(200)
		if u != v {
			_, _ = g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v))
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = curvature.Compute(g, curvature.OllivierRicci{})
	}
}
