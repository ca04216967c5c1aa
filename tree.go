package kdtree

import "iter"

// Tree is a dynamic 2D k-d tree mapping exact points to values.
//
// Nodes split on X at even depths and on Y at odd depths. For a node with
// split coordinate c, every point in its left subtree has a coordinate < c
// on that axis and every point in its right subtree has a coordinate >= c.
// No two nodes share a point.
//
// The tree never rebalances itself: depth degrades under sorted or
// adversarial insertion order until the caller invokes Rebalance.
//
// A Tree is not safe for concurrent use; see [Locked].
type Tree[T Number, V any] struct {
	root  *node[T, V]
	count int
	cfg   Config
}

// node owns its item and its two children exclusively. The split axis is
// not stored; every traversal threads the depth and derives it.
type node[T Number, V any] struct {
	item        Item[T, V]
	left, right *node[T, V]
}

// child returns the slot the point p descends into from n at the given axis.
func (n *node[T, V]) child(p Point[T], axis int) **node[T, V] {
	if p.Coord(axis) < n.item.Point.Coord(axis) {
		return &n.left
	}
	return &n.right
}

// New returns an empty tree using [DefaultConfig].
func New[T Number, V any]() *Tree[T, V] {
	cfg := DefaultConfig()
	applyDefaults(&cfg)
	return &Tree[T, V]{cfg: cfg}
}

// NewWithConfig returns an empty tree using cfg. Returns an error if the
// config is invalid.
func NewWithConfig[T Number, V any](cfg Config) (*Tree[T, V], error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &Tree[T, V]{cfg: cfg}, nil
}

// Config returns the configuration the tree was created with, after
// defaulting.
func (t *Tree[T, V]) Config() Config { return t.cfg }

// Len returns the number of stored points.
func (t *Tree[T, V]) Len() int { return t.count }

// Empty reports whether the tree stores no points.
func (t *Tree[T, V]) Empty() bool { return t.count == 0 }

// Clear removes every point.
func (t *Tree[T, V]) Clear() {
	t.root = nil
	t.count = 0
}

// Insert stores value at p. It returns false, leaving the tree unchanged,
// if p is already present or has a NaN coordinate.
func (t *Tree[T, V]) Insert(value V, p Point[T]) bool {
	return t.insert(value, p, false)
}

// Set stores value at p, replacing the value of an existing point. It
// returns true if a new point was added and false if an existing value was
// replaced or p has a NaN coordinate.
func (t *Tree[T, V]) Set(value V, p Point[T]) bool {
	return t.insert(value, p, true)
}

func (t *Tree[T, V]) insert(value V, p Point[T], replace bool) bool {
	if !p.valid() {
		return false
	}
	slot := &t.root
	for depth := 0; *slot != nil; depth++ {
		n := *slot
		if n.item.Point == p {
			if replace {
				n.item.Value = value
			}
			return false
		}
		slot = n.child(p, depth&1)
	}
	*slot = &node[T, V]{item: Item[T, V]{Value: value, Point: p}}
	t.count++
	return true
}

// Find returns the item stored at exactly p.
func (t *Tree[T, V]) Find(p Point[T]) (Item[T, V], bool) {
	if n := t.lookup(p); n != nil {
		return n.item, true
	}
	return Item[T, V]{}, false
}

// Exists reports whether p is stored.
func (t *Tree[T, V]) Exists(p Point[T]) bool {
	return t.lookup(p) != nil
}

func (t *Tree[T, V]) lookup(p Point[T]) *node[T, V] {
	n := t.root
	for depth := 0; n != nil; depth++ {
		if n.item.Point == p {
			return n
		}
		n = *n.child(p, depth&1)
	}
	return nil
}

// All returns a lazy pre-order walk over every stored item. Each call
// starts a fresh walk. The tree must not be mutated while a walk is in
// progress.
func (t *Tree[T, V]) All() iter.Seq[Item[T, V]] {
	return func(yield func(Item[T, V]) bool) {
		if t.root == nil {
			return
		}
		stack := []*node[T, V]{t.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.item) {
				return
			}
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
}

// Items returns every stored item in pre-order.
func (t *Tree[T, V]) Items() []Item[T, V] {
	items := make([]Item[T, V], 0, t.count)
	for it := range t.All() {
		items = append(items, it)
	}
	return items
}
