// Package render turns a bst.Tree into human- and machine-readable
// structural representations:
//
//   - Sprint: one-line nested form "(k left right)", "." for a missing child.
//   - Indent: multi-line indented form with L:/R: child labels.
//   - PTermTree / Tree: a pterm.TreeNode and its rendered box-drawing text.
//   - JSON: nested {"key":..,"left":..,"right":..} objects.
//
// All functions read the tree under its read lock.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/katalvlaran/ordtree/bst"
)

// Child labels used by Indent and PTermTree.
const (
	leftLabel  = "L: "
	rightLabel = "R: "
	indentUnit = "  "
)

// Sprint returns the nested one-line form of t (same as t.String()).
// A nil tree renders as ".".
func Sprint[K any](t *bst.Tree[K]) string {
	if t == nil {
		return (*bst.Node[K])(nil).String()
	}

	return t.String()
}

// view runs fn on the root of t under its read lock; a nil tree passes a
// nil root.
func view[K any](t *bst.Tree[K], fn func(root *bst.Node[K]) error) error {
	if t == nil {
		return fn(nil)
	}

	return t.View(fn)
}

// Indent writes one line per node: the root unlabeled at column 0, every
// child indented one level deeper than its parent and prefixed with "L: "
// or "R: ". Left children are written before right children.
func Indent[K any](w io.Writer, t *bst.Tree[K]) error {
	return view(t, func(root *bst.Node[K]) error {
		return writeIndented(w, root, "", 0)
	})
}

func writeIndented[K any](w io.Writer, n *bst.Node[K], label string, level int) error {
	if n == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s%s%v\n", strings.Repeat(indentUnit, level), label, n.Key()); err != nil {
		return err
	}
	if err := writeIndented(w, n.Left(), leftLabel, level+1); err != nil {
		return err
	}

	return writeIndented(w, n.Right(), rightLabel, level+1)
}

// PTermTree converts t into a pterm.TreeNode. Child texts carry the same
// "L: " / "R: " labels as Indent so one-sided nodes stay unambiguous.
func PTermTree[K any](t *bst.Tree[K]) pterm.TreeNode {
	var out pterm.TreeNode
	_ = view(t, func(root *bst.Node[K]) error {
		if root != nil {
			out = ptermNode(root, "")
		}
		return nil
	})

	return out
}

func ptermNode[K any](n *bst.Node[K], label string) pterm.TreeNode {
	node := pterm.TreeNode{Text: label + fmt.Sprint(n.Key())}
	if l := n.Left(); l != nil {
		node.Children = append(node.Children, ptermNode(l, leftLabel))
	}
	if r := n.Right(); r != nil {
		node.Children = append(node.Children, ptermNode(r, rightLabel))
	}

	return node
}

// Tree renders t with pterm.DefaultTree and returns the resulting text.
func Tree[K any](t *bst.Tree[K]) (string, error) {
	return pterm.DefaultTree.WithRoot(PTermTree(t)).Srender()
}

// jsonNode is the wire form of one node; absent children are omitted.
type jsonNode[K any] struct {
	Key   K            `json:"key"`
	Left  *jsonNode[K] `json:"left,omitempty"`
	Right *jsonNode[K] `json:"right,omitempty"`
}

func toJSONNode[K any](n *bst.Node[K]) *jsonNode[K] {
	if n == nil {
		return nil
	}

	return &jsonNode[K]{Key: n.Key(), Left: toJSONNode(n.Left()), Right: toJSONNode(n.Right())}
}

// JSON encodes t as nested objects. indent, when non-empty, is passed to
// json.MarshalIndent. A nil tree encodes as null.
func JSON[K any](t *bst.Tree[K], indent string) ([]byte, error) {
	var root *jsonNode[K]
	_ = view(t, func(r *bst.Node[K]) error {
		root = toJSONNode(r)
		return nil
	})

	if indent != "" {
		return json.MarshalIndent(root, "", indent)
	}

	return json.Marshal(root)
}
