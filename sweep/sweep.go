package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/jmapper/coverio"
	"github.com/katalvlaran/jmapper/curvature"
	"github.com/katalvlaran/jmapper/jmap"
	"github.com/katalvlaran/jmapper/nerve"
	"github.com/katalvlaran/jmapper/persistence"
)

// ErrNoValues is returned when no min_intersection values are given.
var ErrNoValues = errors.New("sweep: no min_intersection values")

// Result is the outcome of one run.
type Result struct {
	RunID           uuid.UUID
	MinIntersection int
	Curvature       string
	UseMin          bool
	Order           persistence.Order
	Vertices        int
	Edges           int
	PolicyGroups    int
	EdgeCurvature   curvature.EdgeValues
	Diagrams        persistence.Diagrams
	Elapsed         time.Duration
	Err             error
}

// Report converts r to its serialized form.
func (r Result) Report() coverio.RunReport {
	rep := coverio.RunReport{
		RunID:           r.RunID.String(),
		MinIntersection: r.MinIntersection,
		Curvature:       r.Curvature,
		UseMin:          r.UseMin,
		Order:           r.Order.String(),
		Vertices:        r.Vertices,
		Edges:           r.Edges,
		PolicyGroups:    r.PolicyGroups,
		EdgeCurvature:   r.EdgeCurvature,
		Diagrams:        r.Diagrams,
	}
	if r.Err != nil {
		rep.Error = r.Err.Error()
	}

	return rep
}

// Runner executes sweeps.
type Runner struct {
	logger    *zap.Logger
	workers   int
	resilient bool
	curvFn    curvature.Func
	useMin    bool
	order     persistence.Order
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithWorkers bounds concurrent runs; n < 1 selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// WithResilient records failing runs instead of aborting the sweep.
func WithResilient(on bool) Option {
	return func(r *Runner) { r.resilient = on }
}

// WithCurvature sets the curvature strategy; nil selects Ollivier-Ricci.
func WithCurvature(fn curvature.Func) Option {
	return func(r *Runner) { r.curvFn = fn }
}

// WithUseMin selects min (true) or max pooling in the filtration.
func WithUseMin(useMin bool) Option {
	return func(r *Runner) { r.useMin = useMin }
}

// WithOrder sets the persistence sweep direction.
func WithOrder(o persistence.Order) Option {
	return func(r *Runner) { r.order = o }
}

// New returns a Runner with defaults: GOMAXPROCS workers, fail-fast,
// Ollivier-Ricci curvature, min pooling, sublevel order.
func New(opts ...Option) *Runner {
	r := &Runner{logger: zap.NewNop(), useMin: true}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers < 1 {
		r.workers = runtime.GOMAXPROCS(0)
	}
	if r.curvFn == nil {
		r.curvFn = curvature.OllivierRicci{}
	}

	return r
}

// Run executes one pipeline per value in minIntersections over cover.
//
// In fail-fast mode the first error is returned along with the partial
// results. In resilient mode per-run errors land in Result.Err and Run only
// fails on context cancellation.
func (r *Runner) Run(ctx context.Context, cover nerve.Cover, minIntersections []int) ([]Result, error) {
	if len(minIntersections) == 0 {
		return nil, ErrNoValues
	}

	results := make([]Result, len(minIntersections))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, k := range minIntersections {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := r.runOne(cover, k)
			results[i] = res
			if res.Err == nil {
				return nil
			}
			if r.resilient {
				r.logger.Warn("run failed, continuing",
					zap.Stringer("run_id", res.RunID),
					zap.Int("min_intersection", k),
					zap.Error(res.Err))
				return nil
			}

			return fmt.Errorf("sweep: min_intersection %d: %w", k, res.Err)
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	return results, nil
}

// runOne builds and evaluates a single JGraph.
func (r *Runner) runOne(cover nerve.Cover, k int) Result {
	start := time.Now()
	res := Result{
		RunID:           uuid.New(),
		MinIntersection: k,
		UseMin:          r.useMin,
		Order:           r.order,
	}
	log := r.logger.With(zap.Stringer("run_id", res.RunID), zap.Int("min_intersection", k))
	log.Info("run started")

	j, err := jmap.New(cover,
		jmap.WithMinIntersection(k),
		jmap.WithCurvature(r.curvFn),
		jmap.WithOrder(r.order),
		jmap.WithLogger(log))
	if err != nil {
		res.Err = err
		res.Elapsed = time.Since(start)
		return res
	}
	res.Vertices = j.Graph().VertexCount()
	res.Edges = j.Graph().EdgeCount()
	res.PolicyGroups = j.NumPolicyGroups()

	if _, err = j.CalculateHomology(nil, r.useMin); err != nil {
		res.Err = err
		res.Elapsed = time.Since(start)
		return res
	}
	res.Diagrams, _ = j.Diagrams()
	res.EdgeCurvature, _ = j.Curvature()
	res.Curvature = j.CurvatureName()
	res.Elapsed = time.Since(start)
	log.Info("run finished",
		zap.Int("policy_groups", res.PolicyGroups),
		zap.Int("h0", res.Diagrams.H0.Len()),
		zap.Duration("elapsed", res.Elapsed))

	return res
}
