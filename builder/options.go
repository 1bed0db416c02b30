// SPDX-License-Identifier: MIT
// Package: jmapper/builder
//
// options.go: functional options for cover construction.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//     Constructors themselves never panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"
	"strconv"
)

// BuilderOption customizes a builderConfig before construction.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved construction state. The counters advance
// across constructors of one BuildCover call.
type builderConfig struct {
	idFn      func(int) string
	rng       *rand.Rand
	nextID    int
	nextPoint int
}

// decimalID is the default cluster id scheme: "0", "1", ...
func decimalID(i int) string { return strconv.Itoa(i) }

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{idFn: decimalID}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithIDScheme sets the cluster id generator. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithPrefix names clusters prefix+index, e.g. "c0", "c1".
func WithPrefix(prefix string) BuilderOption {
	return WithIDScheme(func(i int) string { return prefix + strconv.Itoa(i) })
}

// WithRand uses r for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG for stochastic constructors.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithFirstPoint offsets member indices so they start at p.
func WithFirstPoint(p int) BuilderOption {
	return func(c *builderConfig) { c.nextPoint = p }
}

// cluster allocates the next cluster id.
func (c *builderConfig) cluster() string {
	id := c.idFn(c.nextID)
	c.nextID++

	return id
}

// points allocates k fresh member indices.
func (c *builderConfig) points(k int) []int {
	out := make([]int, k)
	for i := range out {
		out[i] = c.nextPoint
		c.nextPoint++
	}

	return out
}
