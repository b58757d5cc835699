// File: view.go
// Role: Structural access to the tree (shape views, deep copy, invariant check).
// Concurrency:
//   - View, Clone and Validate hold the read lock; Root does not lock at all.

package bst

import "fmt"

// Root returns the root node. The returned node is the live structure, not
// a copy: reading it while another goroutine calls Insert is a data race.
// Use View for locked access.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// View calls fn with the root node while holding the read lock and returns
// fn's error. fn must not retain the node after returning and must not call
// Insert on t.
func (t *Tree[K]) View(fn func(root *Node[K]) error) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return fn(t.root)
}

// Clone returns a deep copy of t with identical shape and comparator.
// Inserting into the clone never affects t and vice versa.
// Complexity: O(n).
func (t *Tree[K]) Clone() *Tree[K] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return &Tree[K]{
		compare: t.compare,
		root:    cloneNode(t.root),
		size:    t.size,
	}
}

func cloneNode[K any](n *Node[K]) *Node[K] {
	if n == nil {
		return nil
	}

	return &Node[K]{key: n.key, left: cloneNode(n.left), right: cloneNode(n.right)}
}

// Validate re-checks the ordering invariant over the whole tree: every key
// must lie strictly between the bounds imposed by its ancestors. It also
// checks that the node count matches Len.
// Complexity: O(n).
func (t *Tree[K]) Validate() error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	if err := t.validate(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d nodes, size is %d", ErrOrderViolation, count, t.size)
	}

	return nil
}

// validate checks n against the open interval (lo, hi); nil bounds are unbounded.
func (t *Tree[K]) validate(n *Node[K], lo, hi *K, count *int) error {
	if n == nil {
		return nil
	}
	if lo != nil && t.compare(n.key, *lo) <= 0 {
		return fmt.Errorf("%w: key %v not greater than ancestor %v", ErrOrderViolation, n.key, *lo)
	}
	if hi != nil && t.compare(n.key, *hi) >= 0 {
		return fmt.Errorf("%w: key %v not less than ancestor %v", ErrOrderViolation, n.key, *hi)
	}
	*count++
	if err := t.validate(n.left, lo, &n.key, count); err != nil {
		return err
	}

	return t.validate(n.right, &n.key, hi, count)
}
