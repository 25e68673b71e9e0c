package quadtree

import "time"

// quadrant indexes the children of an internal node.
type quadrant int

const (
	topLeft quadrant = iota
	topRight
	bottomLeft
	bottomRight
	// parent means the item crosses a midline and stays at the current node.
	parent
)

// Insert adds an item to the tree. It fails with an error matching
// ErrInvalidItem if the item's bounds are not finite or have a negative size,
// in which case the tree is left untouched. Items outside the tree's bounds
// are accepted and placed by the same midline rules as any other item.
func (t *Tree[T]) Insert(item T) error {
	start := time.Now()
	err := validateItem(item.Bounds(), -1)
	if err == nil {
		t.root.insert(item)
		t.size++
	}
	t.hooks.logger.LogInsert(err)
	t.hooks.metrics.RecordInsert(time.Since(start), err)
	return err
}

// insert places item in the subtree rooted at n.
func (n *Node[T]) insert(item T) {
	if n.children != nil {
		q := n.findInsertNode(item.Bounds())
		if q == parent {
			n.items = append(n.items, item)
			return
		}
		n.children[q].insert(item)
		return
	}

	n.items = append(n.items, item)
	if len(n.items) > n.maxChildren && n.depth < n.maxDepth {
		n.divide()
	}
}

// divide turns the leaf n into an internal node and pushes its items down
// into the new quadrants wherever they fit.
func (n *Node[T]) divide() {
	var children [4]*Node[T]
	for i, r := range n.bounds.quadrants() {
		children[i] = &Node[T]{
			bounds:      r,
			depth:       n.depth + 1,
			maxChildren: n.maxChildren,
			maxDepth:    n.maxDepth,
			hooks:       n.hooks,
		}
	}
	n.children = &children

	// Items must be detached before re-inserting, otherwise the leaf branch of
	// insert would see them again.
	items := n.items
	n.items = nil
	for _, item := range items {
		n.insert(item)
	}

	n.hooks.logger.LogDivide(n.depth, len(items), n.bounds)
	n.hooks.metrics.RecordDivide(n.depth)
}

// findInsertNode picks the single quadrant that wholly contains r, or parent
// if r touches or crosses either midline.
func (n *Node[T]) findInsertNode(r Rect) quadrant {
	midX, midY := n.bounds.mid()

	var left bool
	switch {
	case r.X+r.W < midX:
		left = true
	case r.X >= midX:
		left = false
	default:
		return parent
	}

	switch {
	case r.Y+r.H < midY:
		if left {
			return topLeft
		}
		return topRight
	case r.Y >= midY:
		if left {
			return bottomLeft
		}
		return bottomRight
	default:
		return parent
	}
}

// findOverlappingNodes reports, per quadrant, whether r may overlap it. The
// far-edge comparisons are inclusive so that no true overlap is missed.
func (n *Node[T]) findOverlappingNodes(r Rect) [4]bool {
	midX, midY := n.bounds.mid()

	left := r.X < midX
	right := r.X+r.W >= midX
	top := r.Y < midY
	bottom := r.Y+r.H >= midY

	var out [4]bool
	out[topLeft] = left && top
	out[topRight] = right && top
	out[bottomLeft] = left && bottom
	out[bottomRight] = right && bottom
	return out
}
