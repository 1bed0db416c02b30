// SPDX-License-Identifier: MIT
// Package: jmapper/builder
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewClusters indicates a cluster count or size below the minimum.
var ErrTooFewClusters = errors.New("builder: parameter too small")

// ErrInvalidOverlap indicates overlaps that do not fit the cluster size.
var ErrInvalidOverlap = errors.New("builder: invalid overlap")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without an RNG.
var ErrNeedRandSource = errors.New("builder: random source required")

// ErrDuplicateCluster indicates an id scheme that produced an id twice.
var ErrDuplicateCluster = errors.New("builder: duplicate cluster id")

// ErrConstructFailed indicates a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
