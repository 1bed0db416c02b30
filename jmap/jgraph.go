package jmap

import (
	"errors"
	"fmt"
	"maps"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/jmapper/core"
	"github.com/katalvlaran/jmapper/curvature"
	"github.com/katalvlaran/jmapper/filtration"
	"github.com/katalvlaran/jmapper/nerve"
	"github.com/katalvlaran/jmapper/persistence"
)

// ErrNoCurvature is returned when curvature is requested before any has been
// computed, or when the nerve has no edges. It matches curvature.ErrNoCurvature
// under errors.Is.
var ErrNoCurvature = fmt.Errorf("jmap: %w", curvature.ErrNoCurvature)

// Attribute names the filtration attribute written on the filtered graph.
const Attribute = filtration.DefaultAttribute

// JGraph bundles a nerve graph with its curvature and persistence state.
type JGraph struct {
	logger    *zap.Logger
	nerveOpts []nerve.Option
	curvFn    curvature.Func
	order     persistence.Order

	nerve *nerve.Nerve

	mu       sync.Mutex
	curv     curvature.EdgeValues
	curvName string
	filtered *core.Graph
	diagrams *persistence.Diagrams
	useMin   bool
}

// New builds the nerve of cover and computes its components.
//
// Errors:
//   - nerve.ErrEmptyComplex, nerve.ErrEmptyCluster,
//     nerve.ErrInvalidMinIntersection, core.ErrEmptyVertexID.
func New(cover nerve.Cover, opts ...Option) (*JGraph, error) {
	j := &JGraph{
		logger: zap.NewNop(),
		curvFn: curvature.OllivierRicci{},
		order:  persistence.Sublevel,
		useMin: true,
	}
	for _, opt := range opts {
		opt(j)
	}

	n, err := nerve.Build(cover, j.nerveOpts...)
	if err != nil {
		return nil, err
	}
	j.nerve = n
	g := n.Graph()
	j.logger.Debug("nerve built",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("components", n.NumComponents()),
		zap.Int("min_intersection", n.MinIntersection()))

	return j, nil
}

// Graph returns the nerve graph. Callers must not mutate it.
func (j *JGraph) Graph() *core.Graph { return j.nerve.Graph() }

// Nerve returns the underlying nerve.
func (j *JGraph) Nerve() *nerve.Nerve { return j.nerve }

// Components returns the connected components with their indices.
func (j *JGraph) Components() []nerve.Component { return j.nerve.Components() }

// NumPolicyGroups returns the number of connected components.
func (j *JGraph) NumPolicyGroups() int { return j.nerve.NumComponents() }

// Curvature returns a copy of the current edge curvature.
//
// Errors:
//   - ErrNoCurvature if none has been computed.
func (j *JGraph) Curvature() (curvature.EdgeValues, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.curv) == 0 {
		return nil, ErrNoCurvature
	}

	return maps.Clone(j.curv), nil
}

// CurvatureName returns the name of the strategy behind Curvature, or "".
func (j *JGraph) CurvatureName() string {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.curvName
}

// SetCurvature computes curvature with fn (nil selects the configured
// default) and stores it. A failing or mismatched strategy leaves the
// previous curvature in place. A successful update drops the cached diagram.
func (j *JGraph) SetCurvature(fn curvature.Func) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.setCurvatureLocked(fn)
}

func (j *JGraph) setCurvatureLocked(fn curvature.Func) error {
	if fn == nil {
		fn = j.curvFn
	}
	values, err := curvature.Compute(j.nerve.Graph(), fn)
	if err != nil {
		j.logger.Warn("curvature rejected", zap.String("curvature", fn.Name()), zap.Error(err))
		if errors.Is(err, curvature.ErrNoCurvature) {
			return fmt.Errorf("%w: %w", ErrNoCurvature, err)
		}

		return err
	}
	j.curv = values
	j.curvName = fn.Name()
	j.filtered = nil
	j.diagrams = nil
	j.logger.Debug("curvature computed", zap.String("curvature", fn.Name()), zap.Int("edges", len(values)))

	return nil
}

// CalculateHomology runs filtration and persistence and caches the result.
// Curvature is (re)computed when fn is non-nil or none is stored yet.
// useMin selects min pooling of edge values onto vertices.
func (j *JGraph) CalculateHomology(fn curvature.Func, useMin bool) (persistence.Diagram, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	d, err := j.calculateLocked(fn, useMin)
	if err != nil {
		return nil, err
	}

	return d.H0, nil
}

func (j *JGraph) calculateLocked(fn curvature.Func, useMin bool) (persistence.Diagrams, error) {
	if fn != nil || len(j.curv) == 0 {
		if err := j.setCurvatureLocked(fn); err != nil {
			return persistence.Diagrams{}, err
		}
	}

	fg, err := filtration.Make(j.nerve.Graph(), j.curv,
		filtration.WithAttribute(Attribute), filtration.WithUseMin(useMin))
	if err != nil {
		return persistence.Diagrams{}, err
	}
	d, err := persistence.CalculateDiagrams(fg, Attribute, Attribute, persistence.WithOrder(j.order))
	if err != nil {
		return persistence.Diagrams{}, err
	}
	j.filtered = fg
	j.diagrams = &d
	j.useMin = useMin
	j.logger.Debug("homology computed",
		zap.Bool("use_min", useMin),
		zap.Stringer("order", j.order),
		zap.Int("h0", d.H0.Len()),
		zap.Int("h1", d.H1.Len()))

	return d, nil
}

// Diagram returns the cached H0 diagram, computing it with the default
// curvature and min pooling on first use.
func (j *JGraph) Diagram() (persistence.Diagram, error) {
	d, err := j.Diagrams()
	if err != nil {
		return nil, err
	}

	return d.H0, nil
}

// Diagrams returns the cached H0 and H1 diagrams, computing them on first use.
func (j *JGraph) Diagrams() (persistence.Diagrams, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.diagrams != nil {
		return *j.diagrams, nil
	}

	return j.calculateLocked(nil, j.useMin)
}

// Filtered returns the filtered graph behind the cached diagram, or nil.
func (j *JGraph) Filtered() *core.Graph {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.filtered
}
