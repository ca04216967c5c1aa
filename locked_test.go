package kdtree

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocked_ConcurrentInsertAndQuery(t *testing.T) {
	l := NewLocked(New[int, int]())
	const writers, perWriter = 4, 250

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				l.Insert(w*perWriter+i, Pt(w, i))
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				l.FindClosest(Pt(r, i))
				l.Exists(Pt(r, i))
				l.Len()
			}
		}(r)
	}
	wg.Wait()

	require.Equal(t, writers*perWriter, l.Len())
	for w := 0; w < writers; w++ {
		for i := 0; i < perWriter; i++ {
			it, ok := l.Find(Pt(w, i))
			require.True(t, ok)
			require.Equal(t, w*perWriter+i, it.Value)
		}
	}
}

func TestLocked_ConcurrentPopClosestUnique(t *testing.T) {
	tree := New[int, int]()
	for i := 0; i < 400; i++ {
		tree.Insert(i, Pt(i%20, i/20))
	}
	l := NewLocked(tree)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		popped = make(map[int]int)
	)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for {
				it, ok := l.PopClosest(Pt(g*3, g*2))
				if !ok {
					return
				}
				mu.Lock()
				popped[it.Value]++
				mu.Unlock()
			}
		}(g)
	}
	wg.Wait()

	require.True(t, l.Empty())
	require.Len(t, popped, 400)
	for v, n := range popped {
		require.Equal(t, 1, n, "value %d popped %d times", v, n)
	}
}

func TestLocked_SnapshotIteration(t *testing.T) {
	l := NewLocked(New[int, string]())
	l.Insert("a", Pt(0, 0))
	l.Insert("b", Pt(1, 1))
	l.Set("c", Pt(1, 1))

	// Mutating inside the loop must not deadlock.
	count := 0
	for it := range l.All() {
		l.Remove(it.Point)
		count++
	}
	require.Equal(t, 2, count)
	require.True(t, l.Empty())
}

func TestLocked_RebalanceAndStats(t *testing.T) {
	l := NewLocked(New[int, int]())
	for i := 0; i < 31; i++ {
		l.Insert(i, Pt(i, i))
	}
	require.Equal(t, 31, l.Stats().Height)
	l.Rebalance()
	s := l.Stats()
	require.Equal(t, 5, s.Height)
	require.Equal(t, 31, s.Size)

	items, found := l.FindClosestBatch([]Point[int]{Pt(3, 3), Pt(40, 40)}, L1, 2)
	require.Equal(t, []bool{true, true}, found)
	require.Equal(t, 3, items[0].Value)
	require.Equal(t, 30, items[1].Value)

	l.Clear()
	require.Zero(t, l.Len())
}
