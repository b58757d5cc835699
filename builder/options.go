// SPDX-License-Identifier: MIT
// Package: ordtree/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Sequence constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a sequence constructor by mutating a
// builderConfig before keys are generated.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for Shuffled and Random.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStart sets the first (smallest) key of generated ranges. Any value,
// including negatives, is accepted.
func WithStart(start int) BuilderOption {
	return func(c *builderConfig) {
		c.start = start
	}
}

// WithStep sets the gap between consecutive keys of generated ranges.
// Panics if step <= 0: a zero step would produce only duplicates.
func WithStep(step int) BuilderOption {
	if step <= 0 {
		panic("builder: WithStep(step<=0)")
	}

	return func(c *builderConfig) {
		c.step = step
	}
}
