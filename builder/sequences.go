// SPDX-License-Identifier: MIT
// Package: ordtree/builder
//
// sequences.go — key-sequence constructors.
//
// Contract:
//   - n ≥ 1 for every range-based constructor (else ErrTooFewKeys).
//   - Keys come from cfg.key(i) = start + i·step, so they are distinct and
//     ascending before any reordering.
//   - Shuffled/Random require cfg.rng (else ErrNeedRandSource).
//
// Complexity:
//   - Time O(n), Space O(n) for every constructor.

package builder

import "fmt"

// File-local constants for method tagging and parameter minima.
const (
	methodAscending     = "Ascending"
	methodDescending    = "Descending"
	methodBalancedOrder = "BalancedOrder"
	methodShuffled      = "Shuffled"
	methodRandom        = "Random"

	minKeys     = 1
	minKeySpace = 1
)

// sampleKeys is the insertion order of the sample tree drawn in the ordtree
// package doc: root 1 first.
var sampleKeys = [...]int{1, 10, 5, 6, 3, 60, 25, 18}

// Sequence produces keys from a resolved builderConfig.
type Sequence func(cfg builderConfig) ([]int, error)

// Ascending returns a Sequence of n increasing keys. Inserted in this order
// the keys form a right-only chain of height n.
func Ascending(n int) Sequence {
	return func(cfg builderConfig) ([]int, error) {
		if n < minKeys {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodAscending, n, minKeys, ErrTooFewKeys)
		}

		return ascending(cfg, n), nil
	}
}

// Descending returns the keys of Ascending(n) from largest to smallest; the
// resulting tree is a left-only chain.
func Descending(n int) Sequence {
	return func(cfg builderConfig) ([]int, error) {
		if n < minKeys {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodDescending, n, minKeys, ErrTooFewKeys)
		}

		keys := make([]int, n)
		for i := range keys {
			keys[i] = cfg.key(n - 1 - i)
		}

		return keys, nil
	}
}

// BalancedOrder returns the keys of Ascending(n) ordered so that every
// subtree root is inserted before the rest of its range: ranges are split
// at their midpoint breadth-first. Inserting the result yields a tree of
// minimum height ⌈log2(n+1)⌉.
func BalancedOrder(n int) Sequence {
	return func(cfg builderConfig) ([]int, error) {
		if n < minKeys {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodBalancedOrder, n, minKeys, ErrTooFewKeys)
		}

		type span struct{ lo, hi int } // inclusive index range
		keys := make([]int, 0, n)
		queue := []span{{0, n - 1}}
		var s span
		for len(queue) > 0 {
			s, queue = queue[0], queue[1:]
			if s.lo > s.hi {
				continue
			}
			mid := s.lo + (s.hi-s.lo)/2
			keys = append(keys, cfg.key(mid))
			queue = append(queue, span{s.lo, mid - 1}, span{mid + 1, s.hi})
		}

		return keys, nil
	}
}

// Shuffled returns a random permutation of Ascending(n) drawn from cfg.rng.
func Shuffled(n int) Sequence {
	return func(cfg builderConfig) ([]int, error) {
		if n < minKeys {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodShuffled, n, minKeys, ErrTooFewKeys)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodShuffled, ErrNeedRandSource)
		}

		keys := ascending(cfg, n)
		cfg.rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

		return keys, nil
	}
}

// Random returns n keys drawn with replacement from the first space keys of
// the configured range. With n > space duplicates are guaranteed, which makes
// it the generator of choice for exercising duplicate dropping.
func Random(n, space int) Sequence {
	return func(cfg builderConfig) ([]int, error) {
		if n < minKeys {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minKeys, ErrTooFewKeys)
		}
		if space < minKeySpace {
			return nil, fmt.Errorf("%s: space=%d < min=%d: %w", methodRandom, space, minKeySpace, ErrTooFewKeys)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}

		keys := make([]int, n)
		for i := range keys {
			keys[i] = cfg.key(cfg.rng.Intn(space))
		}

		return keys, nil
	}
}

// Sample returns the eight keys of the package-doc sample tree in insertion
// order: 1 10 5 6 3 60 25 18. The configuration is ignored.
func Sample() Sequence {
	return func(builderConfig) ([]int, error) {
		keys := sampleKeys

		return keys[:], nil
	}
}

func ascending(cfg builderConfig, n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = cfg.key(i)
	}

	return keys
}
