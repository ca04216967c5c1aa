package kdtree

import (
	"cmp"
	"slices"
)

// Rebalance discards the node structure and rebuilds it from the stored
// items so that each node is the median of its own subset on its split
// axis. The stored (value, point) pairs are unchanged.
func (t *Tree[T, V]) Rebalance() {
	if t.root == nil {
		return
	}
	before := t.height()
	items := t.Items()
	t.root = build(items, 0)
	t.cfg.logf("kdtree: rebalanced %d points, height %d -> %d", len(items), before, t.height())
}

// NewFromItems returns a balanced tree holding items, using
// [DefaultConfig]. When several items share a point the first one is kept;
// items with a NaN coordinate are dropped.
func NewFromItems[T Number, V any](items []Item[T, V]) *Tree[T, V] {
	t := New[T, V]()
	seen := make(map[Point[T]]struct{}, len(items))
	kept := make([]Item[T, V], 0, len(items))
	for _, it := range items {
		if !it.Point.valid() {
			continue
		}
		if _, dup := seen[it.Point]; dup {
			continue
		}
		seen[it.Point] = struct{}{}
		kept = append(kept, it)
	}
	t.root = build(kept, 0)
	t.count = len(kept)
	return t
}

// build recursively builds a subtree at the given depth from items, which
// it reorders in place.
func build[T Number, V any](items []Item[T, V], depth int) *node[T, V] {
	if len(items) == 0 {
		return nil
	}
	axis := depth & 1
	slices.SortFunc(items, func(a, b Item[T, V]) int {
		return cmp.Compare(a.Point.Coord(axis), b.Point.Coord(axis))
	})

	// Everything left of the pivot must be strictly smaller, so the pivot
	// is the first item sharing the median coordinate.
	mid := len(items) / 2
	for mid > 0 && items[mid-1].Point.Coord(axis) == items[mid].Point.Coord(axis) {
		mid--
	}

	n := &node[T, V]{item: items[mid]}
	n.left = build(items[:mid], depth+1)
	n.right = build(items[mid+1:], depth+1)
	return n
}
