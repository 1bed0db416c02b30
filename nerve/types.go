package nerve

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for nerve construction.
var (
	// ErrEmptyComplex indicates a cover with no clusters.
	ErrEmptyComplex = errors.New("nerve: empty simplicial complex")

	// ErrEmptyCluster indicates a cluster with no members.
	ErrEmptyCluster = errors.New("nerve: cluster has no members")

	// ErrInvalidMinIntersection indicates a minimum intersection below 1.
	ErrInvalidMinIntersection = errors.New("nerve: min intersection must be positive")

	// ErrUnknownVertex indicates a component lookup for a vertex outside the nerve.
	ErrUnknownVertex = errors.New("nerve: unknown vertex")
)

// DefaultMinIntersection is the overlap required for an edge unless configured.
const DefaultMinIntersection = 1

// IntersectionAttr names the edge attribute holding the overlap cardinality.
const IntersectionAttr = "intersection"

// Cover maps cluster ids to member indices.
type Cover map[string][]int

// CoverFromInts converts an integer-keyed cover to a Cover with decimal ids.
func CoverFromInts(m map[int][]int) Cover {
	out := make(Cover, len(m))
	for k, v := range m {
		out[strconv.Itoa(k)] = v
	}

	return out
}

// Options configures Build.
type Options struct {
	// MinIntersection is the smallest overlap that yields an edge.
	MinIntersection int

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns MinIntersection = DefaultMinIntersection.
func DefaultOptions() Options {
	return Options{MinIntersection: DefaultMinIntersection}
}

// WithMinIntersection sets the minimum overlap; k < 1 is rejected by Build
// with ErrInvalidMinIntersection.
func WithMinIntersection(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrInvalidMinIntersection, k)
			return
		}
		o.MinIntersection = k
	}
}
