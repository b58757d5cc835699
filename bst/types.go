// Package bst defines the Tree and Node types, construction options and
// sentinel errors.
//
// All Tree methods lock internally (mu), so a single Tree may be shared
// across goroutines.
package bst

import (
	"cmp"
	"errors"
	"sync"
)

// ErrOrderViolation indicates that a key sits on the wrong side of one of its
// ancestors. Insert cannot produce this; it surfaces only when a comparator
// is inconsistent (not a strict weak ordering).
var ErrOrderViolation = errors.New("bst: ordering invariant violated")

// Node is one key of the tree together with its two optional subtrees.
//
// Fields are unexported so the ordering invariant can only be changed
// through Tree.Insert. A nil child means "no subtree".
type Node[K any] struct {
	key   K
	left  *Node[K]
	right *Node[K]
}

// Key returns the key held by n, or the zero K for a nil node.
func (n *Node[K]) Key() K {
	if n == nil {
		var zero K
		return zero
	}

	return n.key
}

// Left returns the left subtree (keys strictly less than n.Key()), or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}

	return n.left
}

// Right returns the right subtree (keys strictly greater than n.Key()), or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}

	return n.right
}

// IsLeaf reports whether n has no children. A nil node is not a leaf.
func (n *Node[K]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

// Option configures a Tree before its root is placed.
type Option[K any] func(t *Tree[K])

// WithCompare overrides the ordering used by the Tree.
// compare must return a negative number when a < b, zero when a == b and a
// positive number when a > b. Panics on nil.
func WithCompare[K any](compare func(a, b K) int) Option[K] {
	if compare == nil {
		panic("bst: WithCompare(nil)")
	}

	return func(t *Tree[K]) { t.compare = compare }
}

// Tree is an unbalanced binary search tree.
//
// mu guards root and size. compare is fixed at construction and never
// changes, so it is read without locking.
type Tree[K any] struct {
	mu sync.RWMutex // guards root and size

	compare func(a, b K) int // three-way ordering of keys

	root *Node[K] // never nil after construction
	size int      // number of distinct keys
}

// New creates a single-node tree holding key, ordered by cmp.Compare.
// Always succeeds.
// Complexity: O(1)
func New[K cmp.Ordered](key K, opts ...Option[K]) *Tree[K] {
	return newTree(key, cmp.Compare[K], opts)
}

// NewFunc creates a single-node tree holding key for a key type ordered by
// compare. Panics if compare is nil.
// Complexity: O(1)
func NewFunc[K any](key K, compare func(a, b K) int, opts ...Option[K]) *Tree[K] {
	if compare == nil {
		panic("bst: NewFunc with nil compare")
	}

	return newTree(key, compare, opts)
}

func newTree[K any](key K, compare func(a, b K) int, opts []Option[K]) *Tree[K] {
	t := &Tree[K]{compare: compare}
	for _, opt := range opts {
		opt(t)
	}
	t.root = &Node[K]{key: key}
	t.size = 1

	return t
}
