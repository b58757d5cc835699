// File: methods.go
// Role: Insertion and point queries on Tree.
// Concurrency:
//   - Insert/InsertAll take the write lock; queries take the read lock.

package bst

// Insert places key into the tree, preserving the ordering invariant.
//
// The walk starts at the root: a strictly greater key descends right, a
// strictly smaller key descends left, and the first empty slot on that path
// receives a new leaf. A key equal to an existing one is discarded and the
// tree is left untouched.
// Complexity: O(h), h = current height; at most one allocation.
func (t *Tree[K]) Insert(key K) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.root.insert(key, t.compare) {
		t.size++
	}
}

// InsertAll inserts keys in order and returns how many of them were new.
// len(keys) minus the result is the number of duplicates that were dropped.
// Complexity: O(m·h) for m keys.
func (t *Tree[K]) InsertAll(keys ...K) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	added := 0
	for _, key := range keys {
		if t.root.insert(key, t.compare) {
			added++
		}
	}
	t.size += added

	return added
}

// insert descends from n and attaches key as a new leaf. It reports whether
// a node was allocated (false for a duplicate).
func (n *Node[K]) insert(key K, compare func(a, b K) int) bool {
	c := compare(key, n.key)
	switch {
	case c > 0:
		if n.right == nil {
			n.right = &Node[K]{key: key}
			return true
		}

		return n.right.insert(key, compare)
	case c < 0:
		if n.left == nil {
			n.left = &Node[K]{key: key}
			return true
		}

		return n.left.insert(key, compare)
	default:
		return false
	}
}

// Contains reports whether key is stored in the tree.
// Complexity: O(h).
func (t *Tree[K]) Contains(key K) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := t.root
	for n != nil {
		c := t.compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Len returns the number of distinct keys in the tree.
// Complexity: O(1).
func (t *Tree[K]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
// A root-only tree has height 1.
// Complexity: O(n).
func (t *Tree[K]) Height() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return height(t.root)
}

func height[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}

// Min returns the smallest key. ok is false only for a nil tree.
// Complexity: O(h).
func (t *Tree[K]) Min() (key K, ok bool) {
	if t == nil {
		return key, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.key, true
}

// Max returns the largest key. ok is false only for a nil tree.
// Complexity: O(h).
func (t *Tree[K]) Max() (key K, ok bool) {
	if t == nil {
		return key, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key, true
}
