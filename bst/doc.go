// Package bst provides an unbalanced, thread-safe binary search tree over
// totally-ordered keys.
//
// The Tree T = (root, compare) keeps one invariant under every insertion:
//
//   - every key in a node's left subtree is strictly less than the node's key;
//   - every key in a node's right subtree is strictly greater.
//
// Duplicate keys are dropped silently. Insert never fails, never rebalances
// and allocates at most one node, so inserting an already sorted sequence
// degrades the tree into a single chain of depth n. That limitation is part
// of the contract: this is a plain BST, not an AVL or red-black tree.
//
// Ownership:
//
//	Each Node exclusively owns its two children. There are no parent links,
//	so cycles cannot be built. Nodes are only released when the whole Tree
//	is dropped; no per-key deletion exists.
//
// Core Methods:
//
//	// Construction
//	New(key K, opts ...Option[K]) *Tree[K]                    // O(1), K cmp.Ordered
//	NewFunc(key K, compare func(a, b K) int, opts ...) *Tree[K] // O(1), any K
//
//	// Mutation
//	Insert(key K)                  // O(h)
//	InsertAll(keys ...K) int       // O(m·h), returns number of keys added
//
//	// Query
//	Contains(key K) bool           // O(h)
//	Len() int                      // O(1)
//	Height() int                   // O(n)
//	Min() (K, bool) / Max() (K, bool) // O(h)
//
//	// Traversal
//	All() iter.Seq[K]              // ascending, lazy, restartable
//	Backward() iter.Seq[K]         // descending
//	Keys() []K                     // O(n) materialised ascending slice
//
//	// Structure
//	Root() *Node[K]                // live read-only view (no locking!)
//	View(fn) error                 // fn(root) under the read lock
//	Clone() *Tree[K]               // O(n) deep copy, same shape
//	Validate() error               // O(n) invariant check
//	String() string                // nested "(key left right)" form
//
// Concurrency:
//
//	Tree carries a sync.RWMutex. Insert takes the write lock; every read,
//	including a running All/Backward loop, holds the read lock. A range loop
//	over All must therefore not call Insert on the same tree.
//
// Errors:
//
//	ErrOrderViolation - Validate found a key on the wrong side of an ancestor.
package bst
