// Package builder provides deterministic key-sequence generators and tree
// builders in a functional-options style, so tests, examples and the CLI
// can produce the same trees from the same parameters.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, first key and step between keys.
//   - Sequence constructors (Sequence implementations):
//     – Ascending(n):     start, start+step, … (right-only chain when inserted).
//     – Descending(n):    the reverse of Ascending (left-only chain).
//     – BalancedOrder(n): median-first order of Ascending(n); inserting it
//     yields a tree of minimum height ⌈log2(n+1)⌉.
//     – Shuffled(n):      a seeded permutation of Ascending(n).
//     – Random(n, space): n draws with replacement from [start, start+space·step),
//     so duplicates are expected.
//     – Sample():         the eight-key sample (1 10 5 6 3 60 25 18).
//   - Builders:
//     – Keys(bopts, seqs...):      concatenate sequences into one key slice.
//     – BuildTree(bopts, seqs...): insert the concatenated keys into a bst.Tree.
//     – Build(keys):               generic: first key is the root.
//     – Named(kind, n):            look up a constructor by name (CLI, config).
//
// Guarantees:
//
//   - Determinism: every constructor except Shuffled/Random is pure; those two
//     require an explicit RNG (WithSeed or WithRand) and fail with
//     ErrNeedRandSource otherwise.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime validation errors wrap a sentinel with the method name, e.g.
//     "Ascending: n=0 < min=1: builder: parameter too small".
package builder
