package builder

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/ordtree/bst"
)

// Sequence kinds understood by Named.
const (
	KindAscending  = "ascending"
	KindDescending = "descending"
	KindBalanced   = "balanced"
	KindShuffled   = "shuffled"
	KindRandom     = "random"
	KindSample     = "sample"
)

// randomSpaceFactor sizes the key space of Named(KindRandom, n) to n/2 so
// that roughly half of the draws are duplicates.
const randomSpaceFactor = 2

var namedSequences = map[string]func(n int) Sequence{
	KindAscending:  Ascending,
	KindDescending: Descending,
	KindBalanced:   BalancedOrder,
	KindShuffled:   Shuffled,
	KindRandom:     func(n int) Sequence { return Random(n, max(n/randomSpaceFactor, minKeySpace)) },
	KindSample:     func(int) Sequence { return Sample() },
}

// Kinds returns the names accepted by Named in sorted order.
func Kinds() []string {
	out := make([]string, 0, len(namedSequences))
	for k := range namedSequences {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Named returns the Sequence registered under kind (case-insensitive) for n
// keys. KindSample ignores n.
func Named(kind string, n int) (Sequence, error) {
	ctor, ok := namedSequences[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return nil, fmt.Errorf("Named: %q (want one of %s): %w", kind, strings.Join(Kinds(), ", "), ErrUnknownSequence)
	}

	return ctor(n), nil
}

// Keys resolves bopts once and concatenates the output of every Sequence in
// order. A shared RNG advances across sequences, so the same seed always
// gives the same concatenation.
func Keys(bopts []BuilderOption, seqs ...Sequence) ([]int, error) {
	cfg := newBuilderConfig(bopts...)

	var out []int
	for i, seq := range seqs {
		if seq == nil {
			return nil, fmt.Errorf("Keys: nil sequence at index %d: %w", i, ErrConstructFailed)
		}
		keys, err := seq(cfg)
		if err != nil {
			return nil, fmt.Errorf("Keys: %w", err)
		}
		out = append(out, keys...)
	}

	return out, nil
}

// BuildTree generates keys via Keys and inserts them into a new tree whose
// root is the first key.
func BuildTree(bopts []BuilderOption, seqs ...Sequence) (*bst.Tree[int], error) {
	keys, err := Keys(bopts, seqs...)
	if err != nil {
		return nil, fmt.Errorf("BuildTree: %w", err)
	}

	return Build(keys)
}

// Build creates a tree rooted at keys[0] and inserts the remaining keys in
// order, dropping duplicates. Returns ErrEmptySequence for an empty slice.
// Complexity: O(n·h).
func Build[K cmp.Ordered](keys []K, opts ...bst.Option[K]) (*bst.Tree[K], error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("Build: %w", ErrEmptySequence)
	}

	t := bst.New(keys[0], opts...)
	t.InsertAll(keys[1:]...)

	return t, nil
}
