package kdtree

// FindClosest returns the stored item nearest to q under the tree's
// configured metric (L2 unless configured otherwise). It returns false if
// the tree is empty or q has a NaN coordinate.
func (t *Tree[T, V]) FindClosest(q Point[T]) (Item[T, V], bool) {
	return t.FindClosestMetric(q, nil)
}

// FindClosestMetric is FindClosest under the metric m. A nil m selects the
// tree's configured metric.
//
// When several points are equally close, the first one met by the search
// wins. The search visits a node before its subtrees and the side of the
// split containing q before the other side, so the winner depends on the
// tree's shape and may change after Rebalance.
func (t *Tree[T, V]) FindClosestMetric(q Point[T], m Metric) (Item[T, V], bool) {
	s, ok := t.closest(q, m)
	if !ok {
		return Item[T, V]{}, false
	}
	return (*s.slot).item, true
}

// PopClosest removes and returns the stored item nearest to q under the
// tree's configured metric. The returned item is the one FindClosest would
// have returned immediately before the call.
func (t *Tree[T, V]) PopClosest(q Point[T]) (Item[T, V], bool) {
	return t.PopClosestMetric(q, nil)
}

// PopClosestMetric is PopClosest under the metric m. A nil m selects the
// tree's configured metric.
func (t *Tree[T, V]) PopClosestMetric(q Point[T], m Metric) (Item[T, V], bool) {
	s, ok := t.closest(q, m)
	if !ok {
		return Item[T, V]{}, false
	}
	out := (*s.slot).item
	*s.slot = t.splice(*s.slot, s.depth)
	t.count--
	return out, true
}

func (t *Tree[T, V]) metric(m Metric) Metric {
	if m != nil {
		return m
	}
	if t.cfg.Metric != nil {
		return t.cfg.Metric
	}
	return EuclideanMetric{}
}

// closest runs the branch-and-bound search and returns its final state,
// which records the slot owning the best node and that node's depth.
func (t *Tree[T, V]) closest(q Point[T], m Metric) (*search[T, V], bool) {
	if t.root == nil || !q.valid() {
		return nil, false
	}
	s := &search[T, V]{q: q, m: t.metric(m), kind: kindOf[T]()}
	s.visit(&t.root, 0)
	return s, s.slot != nil
}

type search[T Number, V any] struct {
	q    Point[T]
	m    Metric
	kind numKind

	best  distance
	slot  **node[T, V]
	depth int
}

func (s *search[T, V]) visit(slot **node[T, V], depth int) {
	n := *slot
	if n == nil {
		return
	}
	p := n.item.Point
	d := s.m.reduce(span(s.kind, s.q.X, p.X), span(s.kind, s.q.Y, p.Y))
	if s.slot == nil || d.less(s.best) {
		s.best, s.slot, s.depth = d, slot, depth
	}

	axis := depth & 1
	near, far := &n.right, &n.left
	if s.q.Coord(axis) < p.Coord(axis) {
		near, far = far, near
	}
	s.visit(near, depth+1)

	// The far side can only hold something closer if the splitting line
	// itself is closer than the best so far.
	gap := s.m.reduce(span(s.kind, s.q.Coord(axis), p.Coord(axis)), magnitude{})
	if gap.less(s.best) {
		s.visit(far, depth+1)
	}
}
