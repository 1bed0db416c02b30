package filtration

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for filtration building.
var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("filtration: graph is nil")

	// ErrNoCurvature is returned when a graph with edges receives no values.
	ErrNoCurvature = errors.New("filtration: no edge values available")

	// ErrValueMismatch is returned when the values do not cover exactly the
	// graph's edges.
	ErrValueMismatch = errors.New("filtration: edge values do not match graph edges")

	// ErrMissingAttribute is returned when propagation finds an element
	// without the source attribute.
	ErrMissingAttribute = errors.New("filtration: attribute missing")
)

// DefaultAttribute is the attribute name Make writes unless configured.
const DefaultAttribute = "curvature"

// IsolatedValue is the vertex value assigned to degree-0 vertices.
const IsolatedValue = 0.0

// Pool condenses a non-empty slice of values into one scalar.
type Pool func(values []float64) float64

// Built-in pools.
var (
	Min  Pool = floats.Min
	Max  Pool = floats.Max
	Sum  Pool = floats.Sum
	Mean Pool = func(values []float64) float64 {
		return floats.Sum(values) / float64(len(values))
	}
)

// Options configures Make.
type Options struct {
	// Attribute names the edge and vertex attribute to write.
	Attribute string

	// UseMin selects min pooling for vertices; false selects max.
	UseMin bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Attribute = DefaultAttribute, UseMin = true.
func DefaultOptions() Options {
	return Options{Attribute: DefaultAttribute, UseMin: true}
}

// WithAttribute sets the attribute name; an empty name keeps the default.
func WithAttribute(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Attribute = name
		}
	}
}

// WithMin pools vertex values with the minimum of incident edge values.
func WithMin() Option {
	return func(o *Options) { o.UseMin = true }
}

// WithMax pools vertex values with the maximum of incident edge values.
func WithMax() Option {
	return func(o *Options) { o.UseMin = false }
}

// WithUseMin sets the pooling direction from a boolean.
func WithUseMin(useMin bool) Option {
	return func(o *Options) { o.UseMin = useMin }
}
