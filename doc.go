// Package ordtree is a small toolkit around an unbalanced binary search tree:
// build one from keys, walk it in any classic order, and look at its shape.
//
// The tree does no rebalancing, so insertion order decides the shape. Sorted
// input degenerates into a chain; median-first input gives minimum height.
// Making that visible is the point of the toolkit.
//
//	bst/       — Tree[K] and Node[K]: insert, lookup, in-order iteration
//	traverse/  — in/pre/post/level-order walks with hooks, depth limits, ctx
//	builder/   — key sequences (ascending, shuffled, balanced, ...) and Build
//	render/    — nested, indented, pterm and JSON views of a tree
//	cmd/ordtree — command-line front end
//
// Quick ASCII example, keys inserted as 1 10 5 6 3 60 25 18:
//
//	1
//	 ╲
//	  10
//	 ╱  ╲
//	5    60
//	╱ ╲   ╱
//	3  6 25
//	     ╱
//	    18
//
//	go get github.com/katalvlaran/ordtree/bst
package ordtree
