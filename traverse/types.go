// Package traverse defines walk orders, options, results and sentinel errors.
package traverse

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/ordtree/bst"
)

var (
	// ErrTreeNil is returned when a nil *bst.Tree is passed to Visit or Walk.
	ErrTreeNil = errors.New("traverse: tree is nil")

	// ErrUnknownOrder indicates an Order value outside the defined set, or an
	// order name ParseOrder does not recognise.
	ErrUnknownOrder = errors.New("traverse: unknown order")
)

// Order selects the sequence in which nodes are visited.
type Order int

const (
	InOrder    Order = iota // left, node, right: ascending keys
	PreOrder                // node, left, right
	PostOrder               // left, right, node
	LevelOrder              // breadth-first, top to bottom, left to right
)

var orderNames = [...]string{
	InOrder:    "in",
	PreOrder:   "pre",
	PostOrder:  "post",
	LevelOrder: "level",
}

// String returns the short name used by ParseOrder ("in", "pre", "post", "level").
func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("Order(%d)", int(o))
	}

	return orderNames[o]
}

// ParseOrder maps a case-insensitive name to an Order. Both the short names
// and the long forms ("inorder", "pre-order", "level-order", ...) are accepted.
func ParseOrder(name string) (Order, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimSuffix(strings.ReplaceAll(s, "-", ""), "order")
	for o, n := range orderNames {
		if s == n {
			return Order(o), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

// Option configures a walk.
type Option func(*Options)

// Options holds the walk parameters.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Order is the visiting order; defaults to InOrder.
	Order Order

	// MaxDepth, if non-negative, skips nodes (and their subtrees) deeper
	// than MaxDepth. The root is at depth 0. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with a background context, InOrder and
// no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Order:    InOrder,
		MaxDepth: -1,
	}
}

// WithContext sets the context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder sets the visiting order.
func WithOrder(order Order) Option {
	return func(o *Options) {
		o.Order = order
	}
}

// WithMaxDepth limits the walk to nodes at depth <= limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// VisitFunc receives each visited node, its parent (nil for the root) and
// its depth (root = 0). A non-nil error stops the walk.
type VisitFunc[K any] func(node, parent *bst.Node[K], depth int) error

// Result captures the outcome of Walk.
type Result[K comparable] struct {
	// Order lists keys in the sequence they were visited.
	Order []K

	// Depth maps each visited key to its distance (#edges) from the root.
	Depth map[K]int

	// Parent maps each visited key to its parent's key. The root is absent.
	Parent map[K]K

	// Height is the number of levels reached: max(Depth)+1, or 0 if nothing
	// was visited.
	Height int
}

// Side names a child slot.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}
