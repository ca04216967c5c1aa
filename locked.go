package kdtree

import (
	"iter"
	"sync"
)

// Locked guards a Tree with a single RWMutex. Queries share the read lock
// and mutations take the write lock, so any mix of calls from multiple
// goroutines is safe.
type Locked[T Number, V any] struct {
	mu sync.RWMutex
	t  *Tree[T, V]
}

// NewLocked wraps t. The caller must not use t directly afterwards.
func NewLocked[T Number, V any](t *Tree[T, V]) *Locked[T, V] {
	return &Locked[T, V]{t: t}
}

// Insert stores value at p under the write lock. See [Tree.Insert].
func (l *Locked[T, V]) Insert(value V, p Point[T]) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Insert(value, p)
}

// Set stores or replaces the value at p under the write lock.
func (l *Locked[T, V]) Set(value V, p Point[T]) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Set(value, p)
}

// Remove deletes p under the write lock.
func (l *Locked[T, V]) Remove(p Point[T]) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Remove(p)
}

// PopClosest removes and returns the item nearest to q under the
// configured metric.
func (l *Locked[T, V]) PopClosest(q Point[T]) (Item[T, V], bool) {
	return l.PopClosestMetric(q, nil)
}

// PopClosestMetric holds the write lock across both the search and the
// removal, so no other call can observe or change the tree in between.
func (l *Locked[T, V]) PopClosestMetric(q Point[T], m Metric) (Item[T, V], bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.PopClosestMetric(q, m)
}

// Rebalance rebuilds the tree under the write lock.
func (l *Locked[T, V]) Rebalance() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.t.Rebalance()
}

// Clear removes every point.
func (l *Locked[T, V]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.t.Clear()
}

// Find returns the item stored at exactly p.
func (l *Locked[T, V]) Find(p Point[T]) (Item[T, V], bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.Find(p)
}

// Exists reports whether p is stored.
func (l *Locked[T, V]) Exists(p Point[T]) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.Exists(p)
}

// FindClosest returns the item nearest to q under the configured metric.
func (l *Locked[T, V]) FindClosest(q Point[T]) (Item[T, V], bool) {
	return l.FindClosestMetric(q, nil)
}

// FindClosestMetric returns the item nearest to q under m. Concurrent
// queries share the read lock.
func (l *Locked[T, V]) FindClosestMetric(q Point[T], m Metric) (Item[T, V], bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.FindClosestMetric(q, m)
}

// FindClosestBatch runs Tree.FindClosestBatch under the read lock.
func (l *Locked[T, V]) FindClosestBatch(queries []Point[T], m Metric, numWorkers int) ([]Item[T, V], []bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.FindClosestBatch(queries, m, numWorkers)
}

// Len returns the number of stored points.
func (l *Locked[T, V]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.Len()
}

// Empty reports whether no points are stored.
func (l *Locked[T, V]) Empty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.Empty()
}

// Stats reports the shape of the tree at the time of the call.
func (l *Locked[T, V]) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.Stats()
}

// Items returns a snapshot of every stored item.
func (l *Locked[T, V]) Items() []Item[T, V] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.Items()
}

// All iterates over a snapshot taken when iteration starts, so the lock is
// not held while the caller's loop body runs.
func (l *Locked[T, V]) All() iter.Seq[Item[T, V]] {
	return func(yield func(Item[T, V]) bool) {
		for _, it := range l.Items() {
			if !yield(it) {
				return
			}
		}
	}
}
