// SPDX-License-Identifier: MIT
// Package bst_test contains shared fixtures for the tree tests.
//
// Purpose:
//   - Provide small, deterministic key sets used across test files.
//   - Keep structural assertions (invariant, chain shape) in one place.

package bst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ordtree/bst"
)

// Sample tree: root 1, then these keys in order.
const sampleRoot uint32 = 1

var (
	sampleInserts = []uint32{10, 5, 6, 3, 60, 25, 18}
	sampleSorted  = []uint32{1, 3, 5, 6, 10, 18, 25, 60}
)

// Common sizes (avoid magic numbers in test bodies).
const (
	NChain       = 5
	NProperty    = 200
	NRounds      = 50
	NConcurrent  = 64
	NReaders     = 16
	KeySpaceWide = 1000
)

// buildSample returns the canonical sample tree.
func buildSample() *bst.Tree[uint32] {
	tr := bst.New(sampleRoot)
	for _, k := range sampleInserts {
		tr.Insert(k)
	}

	return tr
}

// requireInvariant walks the live structure and asserts the BST ordering
// property at every node with explicit min/max bounds.
func requireInvariant(t *testing.T, tr *bst.Tree[int]) {
	t.Helper()
	var walk func(n *bst.Node[int], lo, hi *int)
	walk = func(n *bst.Node[int], lo, hi *int) {
		if n == nil {
			return
		}
		k := n.Key()
		if lo != nil {
			require.Greater(t, k, *lo, "key %d must exceed ancestor %d", k, *lo)
		}
		if hi != nil {
			require.Less(t, k, *hi, "key %d must be below ancestor %d", k, *hi)
		}
		walk(n.Left(), lo, &k)
		walk(n.Right(), &k, hi)
	}
	walk(tr.Root(), nil, nil)
}

// distinctCount returns the number of distinct values in keys.
func distinctCount(keys []int) int {
	seen := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}

	return len(seen)
}
