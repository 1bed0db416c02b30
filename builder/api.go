// SPDX-License-Identifier: MIT
// Package: jmapper/builder
//
// api.go: BuildCover orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/jmapper/nerve"
)

// Constructor adds clusters to cover using the shared builderConfig.
// Constructors validate their parameters before adding any cluster.
type Constructor func(cover nerve.Cover, cfg *builderConfig) error

// BuildCover resolves opts and applies cons in order to a new cover.
//
// Errors:
//   - ErrConstructFailed for a nil constructor; any constructor error,
//     wrapped with "BuildCover: %w".
func BuildCover(opts []BuilderOption, cons ...Constructor) (nerve.Cover, error) {
	cfg := newBuilderConfig(opts...)
	cover := make(nerve.Cover)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildCover: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(cover, cfg); err != nil {
			return nil, fmt.Errorf("BuildCover: %w", err)
		}
	}

	return cover, nil
}

// put stores members under a fresh id, refusing id collisions.
func put(cover nerve.Cover, cfg *builderConfig, members []int) error {
	id := cfg.cluster()
	if _, dup := cover[id]; dup {
		return fmt.Errorf("%q: %w", id, ErrDuplicateCluster)
	}
	cover[id] = members

	return nil
}
