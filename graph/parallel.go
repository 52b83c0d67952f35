package graph

import (
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// ForEachHandleParallel applies the callback to the forward handle of every
// node using a bounded worker pool. The graph must not be mutated while the
// iteration runs; the callback is called from multiple goroutines and must
// synchronize its own state. A non-positive worker count uses one worker
// per CPU.
func ForEachHandleParallel(g HandleGraph, workers int, fn func(Handle)) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := pool.New().WithMaxGoroutines(workers)
	g.ForEachHandle(func(h Handle) bool {
		p.Go(func() {
			fn(h)
		})
		return true
	})
	p.Wait()
}
