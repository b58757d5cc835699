// Package traverse implements the depth-first and level-order walkers.
//
// Key features:
//   - Visit(t, fn, opts...): stream nodes with parent and depth
//   - Walk(t, opts...): collect order, depth, parent and height
//   - Cancellation via context.Context, checked before each node
//   - Depth limiting via WithMaxDepth
//
// Complexity:
//
//   - Time:   O(n) plus the cost of fn.
//   - Memory: O(h) recursion for depth-first orders, O(w) queue for LevelOrder.
package traverse

import (
	"fmt"

	"github.com/katalvlaran/ordtree/bst"
)

// walker encapsulates state during a walk.
type walker[K any] struct {
	opts  Options      // walk options
	visit VisitFunc[K] // per-node callback
}

// Visit walks t in the configured order and calls fn for every node within
// the depth limit. It returns the first error from fn (wrapped with the
// node's key) or from the context.
func Visit[K any](t *bst.Tree[K], fn VisitFunc[K], opts ...Option) error {
	// 1. Validate input tree
	if t == nil {
		return ErrTreeNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Order < InOrder || o.Order > LevelOrder {
		return fmt.Errorf("%w: %d", ErrUnknownOrder, int(o.Order))
	}

	w := &walker[K]{opts: o, visit: fn}

	// 3. Walk under the tree's read lock
	return t.View(func(root *bst.Node[K]) error {
		if o.Order == LevelOrder {
			return w.level(root)
		}

		return w.depthFirst(root, nil, 0)
	})
}

// Walk performs Visit and records the visit order, depths and parents.
// On error the partial Result gathered so far is returned with the error.
func Walk[K comparable](t *bst.Tree[K], opts ...Option) (*Result[K], error) {
	if t == nil {
		return nil, ErrTreeNil
	}

	n := t.Len()
	res := &Result[K]{
		Order:  make([]K, 0, n),
		Depth:  make(map[K]int, n),
		Parent: make(map[K]K, n),
	}

	err := Visit(t, func(node, parent *bst.Node[K], depth int) error {
		k := node.Key()
		res.Order = append(res.Order, k)
		res.Depth[k] = depth
		if parent != nil {
			res.Parent[k] = parent.Key()
		}
		if depth+1 > res.Height {
			res.Height = depth + 1
		}

		return nil
	}, opts...)

	return res, err
}

// step runs the per-node checks shared by all orders: cancellation first,
// then the callback.
func (w *walker[K]) step(n, parent *bst.Node[K], depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if err := w.visit(n, parent, depth); err != nil {
		return fmt.Errorf("traverse: visit %v: %w", n.Key(), err)
	}

	return nil
}

// tooDeep reports whether depth lies beyond the configured limit.
func (w *walker[K]) tooDeep(depth int) bool {
	return w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth
}

// depthFirst visits the subtree at n recursively in pre-, in- or post-order.
func (w *walker[K]) depthFirst(n, parent *bst.Node[K], depth int) error {
	if n == nil || w.tooDeep(depth) {
		return nil
	}

	// 1. Pre-order: node before children
	if w.opts.Order == PreOrder {
		if err := w.step(n, parent, depth); err != nil {
			return err
		}
	}

	// 2. Left subtree
	if err := w.depthFirst(n.Left(), n, depth+1); err != nil {
		return err
	}

	// 3. In-order: node between children
	if w.opts.Order == InOrder {
		if err := w.step(n, parent, depth); err != nil {
			return err
		}
	}

	// 4. Right subtree
	if err := w.depthFirst(n.Right(), n, depth+1); err != nil {
		return err
	}

	// 5. Post-order: node after children
	if w.opts.Order == PostOrder {
		return w.step(n, parent, depth)
	}

	return nil
}

// queued is one pending level-order entry.
type queued[K any] struct {
	node   *bst.Node[K]
	parent *bst.Node[K]
	depth  int
}

// level visits nodes breadth-first with a FIFO queue.
func (w *walker[K]) level(root *bst.Node[K]) error {
	if root == nil || w.tooDeep(0) {
		return nil
	}

	queue := []queued[K]{{node: root}}
	var cur queued[K]
	for len(queue) > 0 {
		// 1. Dequeue
		cur, queue = queue[0], queue[1:]

		// 2. Visit
		if err := w.step(cur.node, cur.parent, cur.depth); err != nil {
			return err
		}

		// 3. Enqueue children within the depth limit, left before right
		if w.tooDeep(cur.depth + 1) {
			continue
		}
		if l := cur.node.Left(); l != nil {
			queue = append(queue, queued[K]{node: l, parent: cur.node, depth: cur.depth + 1})
		}
		if r := cur.node.Right(); r != nil {
			queue = append(queue, queued[K]{node: r, parent: cur.node, depth: cur.depth + 1})
		}
	}

	return nil
}
