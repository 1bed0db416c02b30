package jmap_test

import (
	"testing"

	"github.com/katalvlaran/jmapper/builder"
	"github.com/katalvlaran/jmapper/jmap"
)

// BenchmarkPipeline runs nerve → curvature → filtration → persistence on a
// random cover of 60 clusters over 300 points.
func BenchmarkPipeline(b *testing.B) {
	cover, err := builder.BuildCover([]builder.BuilderOption{builder.WithSeed(5)},
		builder.Random(60, 300, 0.02))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j, err := jmap.New(cover)
		if err != nil {
			b.Fatal(err)
		}
		_, _ = j.Diagrams()
	}
}
