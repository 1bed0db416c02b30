// SPDX-License-Identifier: MIT
// Package: jmapper/builder
//
// impl.go: cover constructors.
//
// Complexity:
//   - Chain, Clique, Disjoint: O(n·size).
//   - Random: O(n·points) Bernoulli trials.

package builder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/jmapper/nerve"
)

const (
	methodChain    = "Chain"
	methodClique   = "Clique"
	methodDisjoint = "Disjoint"
	methodRandom   = "Random"

	minClusters = 1
	minSize     = 1
)

// Chain returns n clusters of size members where cluster i shares
// overlaps[i % len(overlaps)] members with cluster i+1 and nothing with any
// other cluster. No overlaps means 1. Every overlap must be ≥ 1 and twice the
// largest must not exceed size.
func Chain(n, size int, overlaps ...int) Constructor {
	return func(cover nerve.Cover, cfg *builderConfig) error {
		if n < minClusters || size < minSize {
			return fmt.Errorf("%s: n=%d size=%d: %w", methodChain, n, size, ErrTooFewClusters)
		}
		if len(overlaps) == 0 {
			overlaps = []int{1}
		}
		if slices.Min(overlaps) < 1 || 2*slices.Max(overlaps) > size {
			return fmt.Errorf("%s: overlaps %v with size %d: %w", methodChain, overlaps, size, ErrInvalidOverlap)
		}

		var tail []int
		for i := 0; i < n; i++ {
			members := append(slices.Clone(tail), cfg.points(size-len(tail))...)
			if err := put(cover, cfg, members); err != nil {
				return fmt.Errorf("%s: %w", methodChain, err)
			}
			k := overlaps[i%len(overlaps)]
			tail = members[len(members)-k:]
		}

		return nil
	}
}

// Clique returns n clusters of size members that all contain the same shared
// points, so their nerve is complete for any min_intersection ≤ shared.
func Clique(n, size, shared int) Constructor {
	return func(cover nerve.Cover, cfg *builderConfig) error {
		if n < minClusters || size < minSize {
			return fmt.Errorf("%s: n=%d size=%d: %w", methodClique, n, size, ErrTooFewClusters)
		}
		if shared < 1 || shared > size {
			return fmt.Errorf("%s: shared=%d size=%d: %w", methodClique, shared, size, ErrInvalidOverlap)
		}
		common := cfg.points(shared)
		for i := 0; i < n; i++ {
			members := append(slices.Clone(common), cfg.points(size-shared)...)
			if err := put(cover, cfg, members); err != nil {
				return fmt.Errorf("%s: %w", methodClique, err)
			}
		}

		return nil
	}
}

// Disjoint returns n clusters of size fresh members each.
func Disjoint(n, size int) Constructor {
	return func(cover nerve.Cover, cfg *builderConfig) error {
		if n < minClusters || size < minSize {
			return fmt.Errorf("%s: n=%d size=%d: %w", methodDisjoint, n, size, ErrTooFewClusters)
		}
		for i := 0; i < n; i++ {
			if err := put(cover, cfg, cfg.points(size)); err != nil {
				return fmt.Errorf("%s: %w", methodDisjoint, err)
			}
		}

		return nil
	}
}

// Random returns n clusters over a pool of points fresh members; each point
// joins each cluster independently with probability p. A cluster that draws
// no member receives one uniformly chosen point.
func Random(n, points int, p float64) Constructor {
	return func(cover nerve.Cover, cfg *builderConfig) error {
		if n < minClusters || points < minSize {
			return fmt.Errorf("%s: n=%d points=%d: %w", methodRandom, n, points, ErrTooFewClusters)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f: %w", methodRandom, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		pool := cfg.points(points)
		for i := 0; i < n; i++ {
			var members []int
			for _, pt := range pool {
				if cfg.rng.Float64() < p {
					members = append(members, pt)
				}
			}
			if len(members) == 0 {
				members = []int{pool[cfg.rng.Intn(len(pool))]}
			}
			if err := put(cover, cfg, members); err != nil {
				return fmt.Errorf("%s: %w", methodRandom, err)
			}
		}

		return nil
	}
}
