// SPDX-License-Identifier: MIT
// Package: ordtree/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng   = nil  (pure/deterministic unless seeded)
//   • start = 1    (keys start at 1)
//   • step  = 1

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic constructors; nil means "no randomness".
	rng *rand.Rand
	// First key of generated ranges.
	start int
	// Gap between consecutive keys (>0).
	step int
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultStart = 1
	defaultStep  = 1
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:   nil,
		start: defaultStart,
		step:  defaultStep,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// key returns the i-th key of the configured range.
func (c builderConfig) key(i int) int {
	return c.start + i*c.step
}
