package kdtree

// Remove deletes the point p. It returns false if p is not stored.
//
// Removing an internal node promotes the node with the minimum coordinate
// on the removed node's split axis from one of its subtrees, then removes
// that node from its old position in turn, so a single removal costs
// O(depth²) in the worst case.
func (t *Tree[T, V]) Remove(p Point[T]) bool {
	var removed bool
	t.root, removed = t.remove(t.root, p, 0)
	if removed {
		t.count--
	}
	return removed
}

// remove deletes p from the subtree rooted at n (at the given depth) and
// returns the new root of that subtree.
func (t *Tree[T, V]) remove(n *node[T, V], p Point[T], depth int) (*node[T, V], bool) {
	if n == nil {
		return nil, false
	}
	if n.item.Point == p {
		return t.splice(n, depth), true
	}
	var removed bool
	if p.Coord(depth&1) < n.item.Point.Coord(depth&1) {
		n.left, removed = t.remove(n.left, p, depth+1)
	} else {
		n.right, removed = t.remove(n.right, p, depth+1)
	}
	return n, removed
}

// splice removes n itself from the tree and returns the node that takes its
// place, which is nil for a leaf. The count is not touched.
func (t *Tree[T, V]) splice(n *node[T, V], depth int) *node[T, V] {
	axis := depth & 1
	switch {
	case n.right != nil:
		// The right-subtree minimum keeps "right >= pivot" for everything
		// left behind, and every left point is already below it.
		m := minNode(n.right, axis, depth+1)
		n.item = m.item
		n.right, _ = t.remove(n.right, m.item.Point, depth+1)
		return n
	case n.left != nil:
		// Promoting the left-subtree maximum would leave equal coordinates
		// on the left. Promote the minimum instead and move what remains to
		// the right, where ">= pivot" holds. Rebuilding the left subtree
		// around its maximum would also work but costs a full rebuild.
		m := minNode(n.left, axis, depth+1)
		n.item = m.item
		n.right, _ = t.remove(n.left, m.item.Point, depth+1)
		n.left = nil
		return n
	default:
		return nil
	}
}

// minNode returns the node with the smallest coordinate on axis within the
// subtree rooted at n, which sits at the given depth. Ties go to the first
// node in pre-order.
func minNode[T Number, V any](n *node[T, V], axis, depth int) *node[T, V] {
	best := n
	consider := func(c *node[T, V]) {
		if c == nil {
			return
		}
		if m := minNode(c, axis, depth+1); m.item.Point.Coord(axis) < best.item.Point.Coord(axis) {
			best = m
		}
	}
	consider(n.left)
	// A node splitting on the same axis keeps everything >= itself on the
	// right, so only the left side can hold something smaller.
	if depth&1 != axis {
		consider(n.right)
	}
	return best
}
