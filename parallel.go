package kdtree

import "sync"

// FindClosestBatch answers FindClosestMetric for every query using multiple
// goroutines. The tree must not be mutated until it returns. numWorkers
// controls the degree of parallelism; if <= 0 the configured Workers is
// used, and with a single worker the queries run on the calling goroutine.
//
// items[i] and found[i] are exactly what FindClosestMetric(queries[i], m)
// returns.
func (t *Tree[T, V]) FindClosestBatch(queries []Point[T], m Metric, numWorkers int) (items []Item[T, V], found []bool) {
	n := len(queries)
	items = make([]Item[T, V], n)
	found = make([]bool, n)

	if numWorkers <= 0 {
		numWorkers = t.cfg.Workers
	}
	if numWorkers <= 1 || n <= 1 {
		for i, q := range queries {
			items[i], found[i] = t.FindClosestMetric(q, m)
		}
		return items, found
	}

	// Each worker owns a contiguous range of queries, so writes never
	// overlap and need no synchronization.
	var wg sync.WaitGroup
	perWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * perWorker
		end := min(start+perWorker, n)
		if start >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				items[i], found[i] = t.FindClosestMetric(queries[i], m)
			}
		}(start, end)
	}

	wg.Wait()
	return items, found
}
