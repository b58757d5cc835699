// File: methods_iter.go
// Role: In-order traversal as lazy iterator sequences.
// Determinism:
//   - All yields keys in strictly ascending order, Backward in strictly descending order.
// Concurrency:
//   - The read lock is held for the whole range loop. Do not Insert into the
//     same tree from inside the loop body.

package bst

import "iter"

// All returns the keys in ascending order (in-order traversal).
//
// The sequence is lazy: nothing is visited until it is ranged over, and
// breaking out of the loop stops the walk. Each range over the returned
// value starts again from the smallest key.
// Complexity: O(n) for a full pass, O(h) extra memory.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.mu.RLock()
		defer t.mu.RUnlock()

		inOrder(t.root, false, yield)
	}
}

// Backward returns the keys in descending order.
func (t *Tree[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.mu.RLock()
		defer t.mu.RUnlock()

		inOrder(t.root, true, yield)
	}
}

// Keys returns a freshly allocated ascending slice of all keys.
// Complexity: O(n).
func (t *Tree[K]) Keys() []K {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]K, 0, t.size)
	inOrder(t.root, false, func(k K) bool {
		out = append(out, k)
		return true
	})

	return out
}

// inOrder walks the subtree at n with an explicit stack so that deep
// (degenerate) trees do not grow the goroutine stack. reverse swaps the
// roles of left and right. It returns false if yield stopped the walk.
func inOrder[K any](n *Node[K], reverse bool, yield func(K) bool) bool {
	near := func(n *Node[K]) *Node[K] { return n.left }
	far := func(n *Node[K]) *Node[K] { return n.right }
	if reverse {
		near, far = far, near
	}

	var stack []*Node[K]
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = near(n)
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(n.key) {
			return false
		}
		n = far(n)
	}

	return true
}
