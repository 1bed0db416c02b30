package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jmapper/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls are safe and all
// edges are recorded.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReadsAndClone validates that concurrent readers, attribute
// writers and cloners do not race.
func TestConcurrentReadsAndClone(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		_, _ = g.AddEdge("A", fmt.Sprintf("V%d", i))
	}

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(3 * workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			nbs, err := g.Neighbors("A")
			require.NoError(t, err)
			require.Len(t, nbs, 50)
		}()
		go func(id int) {
			defer wg.Done()
			_ = g.SetVertexAttr("A", "f", float64(id))
			_ = g.SetEdgeAttr("e1", "f", float64(id))
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Clone()
		}()
	}
	wg.Wait()
}
