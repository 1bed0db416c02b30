package sweep_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/jmapper/curvature"
	"github.com/katalvlaran/jmapper/jmap"
	"github.com/katalvlaran/jmapper/nerve"
	"github.com/katalvlaran/jmapper/persistence"
	"github.com/katalvlaran/jmapper/sweep"
)

// layered overlaps: A∩B = 2, B∩C = 2, A∩C = 1, D is disjoint.
func layered() nerve.Cover {
	return nerve.Cover{"A": {1, 2, 3}, "B": {2, 3, 4}, "C": {3, 4, 5}, "D": {9}}
}

func TestRun_Resilient(t *testing.T) {
	obs, logs := observer.New(zapcore.InfoLevel)
	r := sweep.New(
		sweep.WithResilient(true),
		sweep.WithWorkers(2),
		sweep.WithLogger(zap.New(obs)))

	results, err := r.Run(context.Background(), layered(), []int{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, 1, results[0].MinIntersection)
	assert.Equal(t, 3, results[0].Edges)
	assert.Equal(t, 2, results[0].PolicyGroups)
	assert.Len(t, results[0].EdgeCurvature, 3)
	assert.Equal(t, 4, results[0].Diagrams.H0.Len())
	assert.Equal(t, 1, results[0].Diagrams.H1.Len())
	assert.NoError(t, results[0].Err)

	assert.Equal(t, 2, results[1].Edges)
	assert.Equal(t, 2, results[1].PolicyGroups)
	assert.NoError(t, results[1].Err)

	assert.ErrorIs(t, results[2].Err, jmap.ErrNoCurvature)
	assert.NotEmpty(t, results[2].Report().Error)

	ids := map[string]bool{}
	for _, res := range results {
		ids[res.RunID.String()] = true
	}
	assert.Len(t, ids, 3, "run ids are unique")

	assert.Equal(t, 3, logs.FilterMessage("run started").Len())
	assert.Equal(t, 1, logs.FilterMessage("run failed, continuing").Len())
}

func TestRun_FailFast(t *testing.T) {
	r := sweep.New(sweep.WithWorkers(1))
	_, err := r.Run(context.Background(), layered(), []int{1, 3})
	assert.ErrorIs(t, err, jmap.ErrNoCurvature)
	assert.Contains(t, err.Error(), "min_intersection 3")
}

func TestRun_InvalidValue(t *testing.T) {
	r := sweep.New(sweep.WithResilient(true))
	results, err := r.Run(context.Background(), layered(), []int{0, 1})
	require.NoError(t, err)
	assert.ErrorIs(t, results[0].Err, nerve.ErrInvalidMinIntersection)
	assert.NoError(t, results[1].Err)
}

func TestRun_NoValues(t *testing.T) {
	_, err := sweep.New().Run(context.Background(), layered(), nil)
	assert.ErrorIs(t, err, sweep.ErrNoValues)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sweep.New(sweep.WithResilient(true)).Run(ctx, layered(), []int{1, 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Options(t *testing.T) {
	r := sweep.New(
		sweep.WithCurvature(curvature.Forman{}),
		sweep.WithUseMin(false),
		sweep.WithOrder(persistence.Superlevel))
	results, err := r.Run(context.Background(), layered(), []int{2})
	require.NoError(t, err)
	require.Len(t, results, 1)

	res := results[0]
	assert.Equal(t, "forman", res.Curvature)
	assert.False(t, res.UseMin)
	rep := res.Report()
	assert.Equal(t, "superlevel", rep.Order)
	assert.Equal(t, res.RunID.String(), rep.RunID)
	assert.Empty(t, rep.Error)
	// Path A-B-C: Forman is 4-1-2 = 1 on both edges.
	for _, v := range res.EdgeCurvature {
		assert.Equal(t, 1.0, v)
	}
}
