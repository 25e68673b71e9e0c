// Package quadtree implements a region quadtree over axis-aligned rectangles.
//
// A Tree answers "which items might overlap this region?" by recursively
// splitting its bounding box into quadrants. Items that fit entirely inside a
// quadrant are pushed down into it; items that cross a split line stay with
// the node whose split line they cross. Queries return a candidate set: every
// item held by a node whose region the query touches. Callers needing exact
// overlap filter the candidates themselves, e.g. with Rect.Overlaps.
//
// A Tree is not safe for concurrent use. Wrap it with NewLocked when it has to
// be shared between goroutines.
package quadtree

import (
	"fmt"
	"iter"
	"slices"
	"time"
)

// Node is a rectangular region of a Tree. A leaf holds its items directly. An
// internal node has exactly four children and holds only the items that
// straddle its own midlines.
type Node[T Item] struct {
	bounds      Rect
	depth       int
	maxChildren int
	maxDepth    int

	items    []T
	children *[4]*Node[T]
	hooks    *hooks
}

// hooks is shared by every node of a tree.
type hooks struct {
	logger  *Logger
	metrics MetricsCollector
}

// Bounds is the region covered by the node.
func (n *Node[T]) Bounds() Rect { return n.bounds }

// Depth is the distance from the root, which is at depth 0.
func (n *Node[T]) Depth() int { return n.depth }

// IsLeaf reports whether the node has not been divided.
func (n *Node[T]) IsLeaf() bool { return n.children == nil }

// Items returns a copy of the items held directly by this node, in insertion
// order.
func (n *Node[T]) Items() []T { return slices.Clone(n.items) }

// Children returns the four quadrants of an internal node in the order
// top-left, top-right, bottom-left, bottom-right. The bool is false for a
// leaf.
func (n *Node[T]) Children() ([4]*Node[T], bool) {
	if n.children == nil {
		return [4]*Node[T]{}, false
	}
	return *n.children, true
}

// search calls yield for every item held by n, then descends into each
// quadrant the query may overlap. It returns false once yield asks to stop.
func (n *Node[T]) search(q Rect, yield func(T) bool) bool {
	for _, item := range n.items {
		if !yield(item) {
			return false
		}
	}
	if n.children == nil {
		return true
	}
	overlapping := n.findOverlappingNodes(q)
	for i, child := range n.children {
		if !overlapping[i] {
			continue
		}
		if !child.search(q, yield) {
			return false
		}
	}
	return true
}

// clear empties the subtree rooted at n, children first, leaving n a leaf.
func (n *Node[T]) clear() {
	if n.children != nil {
		for _, child := range n.children {
			child.clear()
		}
	}
	n.items = nil
	n.children = nil
}

// Tree is a region quadtree over a fixed bounding box.
type Tree[T Item] struct {
	root  *Node[T]
	size  int
	hooks *hooks
}

// New creates an empty tree covering bounds. Without options a leaf divides
// once it holds more than DefaultMaxChildren items, and no node is created
// deeper than DefaultMaxDepth.
func New[T Item](bounds Rect, opts ...Option) (*Tree[T], error) {
	if reason := checkRect(bounds); reason != "" {
		return nil, fmt.Errorf("%w %v: %s", ErrInvalidBounds, bounds, reason)
	}
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	h := &hooks{logger: o.logger, metrics: o.metrics}
	return &Tree[T]{
		root: &Node[T]{
			bounds:      bounds,
			maxChildren: o.maxChildren,
			maxDepth:    o.maxDepth,
			hooks:       h,
		},
		hooks: h,
	}, nil
}

// Bounds is the region covered by the tree.
func (t *Tree[T]) Bounds() Rect { return t.root.bounds }

// Root gives access to the root node for inspection.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Len is the number of items in the tree.
func (t *Tree[T]) Len() int { return t.size }

// Retrieve calls visit for every item held by a node whose region may
// overlap q. Items held by a node come before the items of its children, and
// children are visited top-left, top-right, bottom-left, bottom-right.
func (t *Tree[T]) Retrieve(q Rect, visit func(T)) {
	start := time.Now()
	var visited int
	t.root.search(q, func(item T) bool {
		visited++
		visit(item)
		return true
	})
	t.hooks.metrics.RecordRetrieve(visited, time.Since(start))
}

// All returns an iterator over the same candidates as Retrieve, in the same
// order. Each call to the iterator walks the tree afresh.
func (t *Tree[T]) All(q Rect) iter.Seq[T] {
	return func(yield func(T) bool) {
		start := time.Now()
		var visited int
		t.root.search(q, func(item T) bool {
			visited++
			return yield(item)
		})
		t.hooks.metrics.RecordRetrieve(visited, time.Since(start))
	}
}

// Clear removes every item and collapses the root back to a leaf. The bounds
// and options of the tree are kept.
func (t *Tree[T]) Clear() {
	items := t.size
	t.root.clear()
	t.size = 0
	t.hooks.logger.LogClear(items)
	t.hooks.metrics.RecordClear()
}

// Walk visits nodes depth first, parents before children. Returning false from
// fn skips the children of that node.
func (t *Tree[T]) Walk(fn func(*Node[T]) bool) {
	var recurse func(*Node[T])
	recurse = func(n *Node[T]) {
		if !fn(n) || n.children == nil {
			return
		}
		for _, child := range n.children {
			recurse(child)
		}
	}
	recurse(t.root)
}

// Stats summarises the shape of a tree.
type Stats struct {
	Nodes  int `json:"nodes" yaml:"nodes"`
	Leaves int `json:"leaves" yaml:"leaves"`
	Items  int `json:"items" yaml:"items"`
	// Height is the depth of the deepest node.
	Height int `json:"height" yaml:"height"`
}

// Stats walks the tree and counts its nodes and items.
func (t *Tree[T]) Stats() Stats {
	var s Stats
	t.Walk(func(n *Node[T]) bool {
		s.Nodes++
		s.Items += len(n.items)
		if n.children == nil {
			s.Leaves++
		}
		s.Height = max(s.Height, n.depth)
		return true
	})
	return s
}
