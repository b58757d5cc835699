// SPDX-License-Identifier: MIT
// Package: ordtree/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with %w.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrTooFewKeys indicates that a size parameter (n, key space) is smaller
// than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewKeys) { /* report invalid size */ }.
var ErrTooFewKeys = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor (Shuffled, Random)
// was used without an RNG in the resolved builderConfig.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply WithSeed */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrEmptySequence indicates that a tree was requested from zero keys; a tree
// always has a root.
var ErrEmptySequence = errors.New("builder: empty key sequence")

// ErrUnknownSequence indicates that Named received a kind it does not know.
var ErrUnknownSequence = errors.New("builder: unknown sequence kind")

// ErrConstructFailed indicates a structural failure while building, e.g. a
// nil Sequence passed to Keys or BuildTree.
var ErrConstructFailed = errors.New("builder: construction failed")
