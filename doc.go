// Package kdtree implements a dynamic two-dimensional k-d tree: a spatial
// index mapping exact 2D points to values, with nearest-neighbor search
// under the L1, L2 and L∞ norms.
//
// Unlike a static k-d tree, points can be inserted and removed at any
// time. Removing an internal node splices a replacement up from its
// subtree so the split invariant holds without a rebuild.
//
// Basic usage:
//
//	t := kdtree.New[float64, string]()
//	t.Insert("depot", kdtree.Pt(0.0, 0.0))
//	t.Insert("store", kdtree.Pt(5.0, 5.0))
//	it, ok := t.FindClosest(kdtree.Pt(1.0, 1.2))
//	// it.Value == "depot"
//	it, ok = t.PopClosestMetric(kdtree.Pt(4.0, 4.0), kdtree.L1)
//	// removes and returns "store"
//
// Coordinates may be any integer or floating-point type. Integer distances
// are computed exactly, even for coordinates spanning the full int64 range.
//
// # Balance
//
// The tree never rebalances on its own; sorted insertion order degrades it
// towards a linked list. [Tree.Stats] reports its shape and
// [Tree.Rebalance] rebuilds it around per-subset medians:
//
//	if t.Stats().Degenerate(2) {
//		t.Rebalance()
//	}
//
// # Concurrency
//
// A [Tree] must not be used from several goroutines at once if any of them
// mutates it. Wrap it with [NewLocked] to share it, or call
// [Tree.FindClosestBatch] to spread read-only queries over goroutines.
package kdtree
