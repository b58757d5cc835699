// Package traverse implements depth-first (pre-, in-, post-order) and
// breadth-first (level-order) walks over a bst.Tree.
//
// What:
//
//   - Visit: streams every node to a VisitFunc together with its parent and
//     depth. Returning an error from the VisitFunc aborts the walk.
//   - Walk: runs Visit and collects a Result (visit order, depth and parent
//     maps, height reached).
//   - Levels: keys grouped by depth (level-order rows).
//   - ChainSide: reports whether a tree degenerated into a one-sided chain,
//     which is what sorted insertion produces in an unbalanced BST.
//
// Options:
//
//   - WithOrder(o)        PreOrder, InOrder (default), PostOrder, LevelOrder.
//   - WithContext(ctx)    cancellation, checked before each node.
//   - WithMaxDepth(limit) skip nodes deeper than limit (0 = root only,
//     negative = unlimited, the default).
//
// Complexity:
//
//   - Visit/Walk: Time O(n), Memory O(h) for depth-first orders and O(w)
//     (widest level) for LevelOrder.
//
// Errors:
//
//   - ErrTreeNil        the tree pointer is nil.
//   - ErrUnknownOrder   the Order value is not one of the four defined.
//   - context.Canceled / context.DeadlineExceeded when the context ends.
//   - any VisitFunc error, wrapped with the key that produced it.
//
// The tree's read lock is held for the whole walk, so a VisitFunc must not
// insert into the tree being walked.
package traverse
