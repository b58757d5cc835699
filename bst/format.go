package bst

import (
	"fmt"
	"strings"
)

// missingChild marks an absent subtree in the nested form.
const missingChild = "."

// String renders the tree in nested form: a leaf prints as "(k)", an inner
// node as "(k left right)" with "." standing for a missing child.
//
//	New(1) + 10, 5, 6, 3, 60, 25, 18
//	→ (1 . (10 (5 (3) (6)) (60 (25 (18) .) .)))
func (t *Tree[K]) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var b strings.Builder
	writeNested(&b, t.root)

	return b.String()
}

// String renders the subtree rooted at n in the same nested form as
// Tree.String. A nil node renders as ".".
func (n *Node[K]) String() string {
	var b strings.Builder
	writeNested(&b, n)

	return b.String()
}

func writeNested[K any](b *strings.Builder, n *Node[K]) {
	if n == nil {
		b.WriteString(missingChild)
		return
	}
	b.WriteByte('(')
	fmt.Fprint(b, n.key)
	if n.left != nil || n.right != nil {
		b.WriteByte(' ')
		writeNested(b, n.left)
		b.WriteByte(' ')
		writeNested(b, n.right)
	}
	b.WriteByte(')')
}
