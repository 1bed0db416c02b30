// SPDX-License-Identifier: MIT

// Package builder generates synthetic Mapper covers for tests, benchmarks and
// demos.
//
// One orchestrator, BuildCover(opts, cons...), resolves functional options
// into a builderConfig and runs every Constructor in order against a fresh
// nerve.Cover. Constructors draw cluster ids and member indices from shared
// counters, so clusters from different constructors never collide and never
// overlap unless a constructor links them on purpose.
//
// Constructors:
//
//	Chain(n, size, overlaps...) – path-shaped nerve, per-link overlap sizes
//	Clique(n, size, shared)     – every pair of clusters shares the same points
//	Disjoint(n, size)           – n isolated clusters
//	Random(n, points, p)        – each point joins each cluster with prob. p
//
// Determinism: equal options, seed and constructor order yield equal covers.
// Random requires an RNG (WithSeed or WithRand); without one it returns
// ErrNeedRandSource.
package builder
