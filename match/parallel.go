package match

import (
	"runtime"

	"github.com/sourcegraph/conc"
)

// workerCount resolves Options.Workers for a query of length n.
// It returns 1 whenever the search should stay on the calling goroutine.
func (o Options) workerCount(n int) int {
	w := o.Workers
	if w == -1 {
		w = runtime.GOMAXPROCS(0)
	}
	if w <= 1 || n < 2 || n < o.ParallelThreshold {
		return 1
	}
	if w > n {
		w = n
	}
	return w
}

// searchParallel splits query into contiguous chunks and searches each on
// its own goroutine. Chunks write disjoint windows of out and only read the
// view, so no synchronisation beyond the final wait is needed. A panic in a
// worker is re-raised on the caller by conc.WaitGroup.
func (v sortedView[K]) searchParallel(query []K, out []int, compare func(a, b K) int, workers int) {
	chunk := (len(query) + workers - 1) / workers

	var wg conc.WaitGroup
	for start := 0; start < len(query); start += chunk {
		end := min(start+chunk, len(query))
		wg.Go(func() {
			v.search(query[start:end], out[start:end], compare)
		})
	}
	wg.Wait()
}
