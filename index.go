package kdtree

import "iter"

// Index is the contract shared by [Tree] and [Locked].
type Index[T Number, V any] interface {
	// Insert stores value at p unless p is already present.
	Insert(value V, p Point[T]) bool

	// Set stores value at p, replacing any existing value.
	// It returns true only if p was not present before.
	Set(value V, p Point[T]) bool

	// Find returns the item stored at exactly p.
	Find(p Point[T]) (Item[T, V], bool)

	// Exists reports whether p is stored.
	Exists(p Point[T]) bool

	// Remove deletes p, reporting whether it was present.
	Remove(p Point[T]) bool

	// FindClosest returns the nearest item under the configured metric.
	FindClosest(q Point[T]) (Item[T, V], bool)

	// FindClosestMetric returns the nearest item under m.
	FindClosestMetric(q Point[T], m Metric) (Item[T, V], bool)

	// PopClosest removes and returns the nearest item under the configured
	// metric.
	PopClosest(q Point[T]) (Item[T, V], bool)

	// PopClosestMetric removes and returns the nearest item under m.
	PopClosestMetric(q Point[T], m Metric) (Item[T, V], bool)

	// Rebalance rebuilds the tree around per-subset medians.
	Rebalance()

	// Len returns the number of stored points.
	Len() int

	// Empty reports whether no points are stored.
	Empty() bool

	// Clear removes every point.
	Clear()

	// All iterates over every stored item once.
	All() iter.Seq[Item[T, V]]

	// Stats reports shape statistics without modifying the tree.
	Stats() Stats
}

var (
	_ Index[float64, int] = (*Tree[float64, int])(nil)
	_ Index[int64, any]   = (*Locked[int64, any])(nil)
)
