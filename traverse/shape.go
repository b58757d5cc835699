package traverse

import "github.com/katalvlaran/ordtree/bst"

// Levels returns the keys grouped by depth: Levels(t)[d] lists the keys at
// depth d from left to right. A nil tree yields nil.
// Complexity: O(n).
func Levels[K any](t *bst.Tree[K]) [][]K {
	if t == nil {
		return nil
	}

	var rows [][]K
	_ = Visit(t, func(node, _ *bst.Node[K], depth int) error {
		if depth == len(rows) {
			rows = append(rows, nil)
		}
		rows[depth] = append(rows[depth], node.Key())

		return nil
	}, WithOrder(LevelOrder))

	return rows
}

// ChainSide reports whether every node of t has at most one child and all
// those children hang on the same side. It returns (SideRight, true) for the
// chain built by ascending inserts, (SideLeft, true) for descending inserts,
// (SideNone, true) for a root-only tree, and (SideNone, false) otherwise.
// Complexity: O(h).
func ChainSide[K any](t *bst.Tree[K]) (Side, bool) {
	if t == nil {
		return SideNone, false
	}

	side := SideNone
	ok := true
	_ = t.View(func(root *bst.Node[K]) error {
		for n := root; n != nil; {
			l, r := n.Left(), n.Right()
			switch {
			case l == nil && r == nil:
				return nil
			case l != nil && r != nil:
				ok = false
				return nil
			case l != nil:
				if side == SideRight {
					ok = false
					return nil
				}
				side, n = SideLeft, l
			default:
				if side == SideLeft {
					ok = false
					return nil
				}
				side, n = SideRight, r
			}
		}

		return nil
	})
	if !ok {
		return SideNone, false
	}

	return side, true
}
