package jmap

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/jmapper/curvature"
	"github.com/katalvlaran/jmapper/nerve"
	"github.com/katalvlaran/jmapper/persistence"
)

// Option configures a JGraph at construction.
type Option func(*JGraph)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(j *JGraph) {
		if l != nil {
			j.logger = l
		}
	}
}

// WithMinIntersection sets the overlap that yields a nerve edge.
func WithMinIntersection(k int) Option {
	return func(j *JGraph) { j.nerveOpts = append(j.nerveOpts, nerve.WithMinIntersection(k)) }
}

// WithCurvature sets the default curvature strategy used when
// CalculateHomology receives nil.
func WithCurvature(fn curvature.Func) Option {
	return func(j *JGraph) {
		if fn != nil {
			j.curvFn = fn
		}
	}
}

// WithOrder sets the persistence sweep direction.
func WithOrder(o persistence.Order) Option {
	return func(j *JGraph) { j.order = o }
}
