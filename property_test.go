package kdtree

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/require"
)

// model mirrors the tree contents in a B-tree ordered by point.
type model struct {
	items *btree.BTreeG[Item[int, int]]
}

func newModel() *model {
	return &model{items: btree.NewG(8, func(a, b Item[int, int]) bool {
		return a.Point.Less(b.Point)
	})}
}

func (m *model) key(p Point[int]) Item[int, int] { return Item[int, int]{Point: p} }

func (m *model) slice() []Item[int, int] {
	out := make([]Item[int, int], 0, m.items.Len())
	m.items.Ascend(func(it Item[int, int]) bool {
		out = append(out, it)
		return true
	})
	return out
}

func sortedItems(tree *Tree[int, int]) []Item[int, int] {
	sorted := btree.NewG(8, func(a, b Item[int, int]) bool {
		return a.Point.Less(b.Point)
	})
	for it := range tree.All() {
		sorted.ReplaceOrInsert(it)
	}
	out := make([]Item[int, int], 0, sorted.Len())
	sorted.Ascend(func(it Item[int, int]) bool {
		out = append(out, it)
		return true
	})
	return out
}

func TestProperty_RandomOperationsMatchModel(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		rng := rand.New(rand.NewSource(seed))
		tree := New[int, int]()
		mdl := newModel()
		randPoint := func() Point[int] { return Pt(rng.Intn(25)-12, rng.Intn(25)-12) }

		for step := 0; step < 3000; step++ {
			p := randPoint()
			switch op := rng.Intn(100); {
			case op < 35:
				_, had := mdl.items.Get(mdl.key(p))
				added := tree.Insert(step, p)
				require.Equal(t, !had, added, "seed %d step %d: Insert(%v)", seed, step, p)
				if added {
					mdl.items.ReplaceOrInsert(Item[int, int]{Value: step, Point: p})
				}
			case op < 45:
				_, replaced := mdl.items.ReplaceOrInsert(Item[int, int]{Value: step, Point: p})
				require.Equal(t, !replaced, tree.Set(step, p), "seed %d step %d: Set(%v)", seed, step, p)
			case op < 70:
				_, had := mdl.items.Delete(mdl.key(p))
				require.Equal(t, had, tree.Remove(p), "seed %d step %d: Remove(%v)", seed, step, p)
			case op < 85:
				metric := allMetrics[rng.Intn(len(allMetrics))]
				want, wantOK := bruteClosest(mdl.slice(), p, metric)
				got, ok := tree.PopClosestMetric(p, metric)
				require.Equal(t, mdl.items.Len() > 0, ok)
				if !ok {
					break
				}
				require.True(t, wantOK)
				require.Equal(t, want, reducedDistance(p, got.Point, metric),
					"seed %d step %d: PopClosest(%v, %v) = %v", seed, step, p, metric, got)
				stored, had := mdl.items.Delete(mdl.key(got.Point))
				require.True(t, had, "popped %v which the model does not hold", got)
				require.Equal(t, stored, got)
			case op < 97:
				want, had := mdl.items.Get(mdl.key(p))
				got, ok := tree.Find(p)
				require.Equal(t, had, ok)
				require.Equal(t, had, tree.Exists(p))
				if had {
					require.Equal(t, want, got)
				}
			case op < 99:
				tree.Rebalance()
				checkInvariants(t, tree)
			default:
				tree.Clear()
				mdl.items.Clear(false)
			}

			require.Equal(t, mdl.items.Len(), tree.Len())
			require.Equal(t, tree.Len() == 0, tree.Empty())
			if step%250 == 0 {
				checkInvariants(t, tree)
				require.Equal(t, mdl.slice(), sortedItems(tree))
			}
		}
		checkInvariants(t, tree)
		require.Equal(t, mdl.slice(), sortedItems(tree))
	}
}

func TestProperty_RemoveAllInRandomOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	for round := 0; round < 20; round++ {
		tree := New[int, int]()
		var pts []Point[int]
		for i := 0; i < 200; i++ {
			p := Pt(rng.Intn(15), rng.Intn(15))
			if tree.Insert(i, p) {
				pts = append(pts, p)
			}
		}
		rng.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })
		for i, p := range pts {
			require.True(t, tree.Remove(p), "round %d: Remove(%v)", round, p)
			require.False(t, tree.Exists(p))
			require.Equal(t, len(pts)-i-1, tree.Len())
			for _, q := range pts[i+1:] {
				require.True(t, tree.Exists(q), "round %d: lost %v after removing %v", round, q, p)
			}
		}
		require.True(t, tree.Empty())
	}
}

func TestProperty_IterationMatchesLen(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	tree := New[int, int]()
	for i := 0; i < 500; i++ {
		if rng.Intn(3) == 0 {
			tree.PopClosest(Pt(rng.Intn(40), rng.Intn(40)))
		} else {
			tree.Insert(i, Pt(rng.Intn(40), rng.Intn(40)))
		}
		count := 0
		seen := make(map[Point[int]]bool)
		for it := range tree.All() {
			require.False(t, seen[it.Point], "%v yielded twice", it.Point)
			seen[it.Point] = true
			count++
		}
		require.Equal(t, tree.Len(), count)
	}
}
