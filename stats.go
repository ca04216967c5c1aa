package kdtree

import (
	"fmt"

	"github.com/cznic/mathutil"
	"gonum.org/v1/gonum/stat"
)

// Stats describes the shape of a tree. It is advisory: computing it never
// changes the tree.
type Stats struct {
	// Size is the number of stored points.
	Size int

	// Height is the number of levels, 0 for an empty tree.
	Height int

	// MinHeight is the height of a perfectly balanced tree of the same
	// size: floor(log2(Size)) + 1, or 0 when empty.
	MinHeight int

	// Leaves is the number of nodes without children.
	Leaves int

	// AvgDepth and DepthStdDev are the mean and population standard
	// deviation of node depths, with the root at depth 0.
	AvgDepth    float64
	DepthStdDev float64

	// BalanceFactor is 2*Leaves/Size. A complete tree scores close to 1 and
	// a linked-list shaped one close to 2/Size. 1 for an empty tree.
	BalanceFactor float64

	// Balance is MinHeight/Height, in (0, 1]. 1 for an empty tree.
	Balance float64
}

// Stats computes shape statistics in one full traversal.
func (t *Tree[T, V]) Stats() Stats {
	s := Stats{Size: t.count, BalanceFactor: 1, Balance: 1}
	if t.root == nil {
		return s
	}

	depths := make([]float64, 0, t.count)
	walkDepth(t.root, 0, func(n *node[T, V], depth int) {
		depths = append(depths, float64(depth))
		s.Height = max(s.Height, depth+1)
		if n.left == nil && n.right == nil {
			s.Leaves++
		}
	})

	s.MinHeight = mathutil.Log2Uint64(uint64(len(depths))) + 1
	s.AvgDepth, s.DepthStdDev = stat.PopMeanStdDev(depths, nil)
	s.BalanceFactor = 2 * float64(s.Leaves) / float64(len(depths))
	s.Balance = float64(s.MinHeight) / float64(s.Height)
	return s
}

// Degenerate reports whether the tree is more than slack times taller than
// a balanced tree of the same size, a hint that Rebalance would pay off.
func (s Stats) Degenerate(slack float64) bool {
	return s.Size > 0 && float64(s.Height) > slack*float64(s.MinHeight)
}

func (s Stats) String() string {
	return fmt.Sprintf("size: %d, height: %d (min %d), avg depth: %.3f, std dev: %.3f, balance factor: %.3f, balance: %.3f",
		s.Size, s.Height, s.MinHeight, s.AvgDepth, s.DepthStdDev, s.BalanceFactor, s.Balance)
}

// height returns the number of levels in the tree.
func (t *Tree[T, V]) height() int {
	h := 0
	walkDepth(t.root, 0, func(_ *node[T, V], depth int) {
		h = max(h, depth+1)
	})
	return h
}

// walkDepth calls fn for every node of the subtree in pre-order, passing
// the node's depth.
func walkDepth[T Number, V any](n *node[T, V], depth int, fn func(*node[T, V], int)) {
	if n == nil {
		return
	}
	fn(n, depth)
	walkDepth(n.left, depth+1, fn)
	walkDepth(n.right, depth+1, fn)
}
