package wxindex

import (
	"sync"

	"github.com/hhkbp2/go-logging"
)

// parallelFor calls fn(i) for every i in [0, n).
// The index space is split into contiguous chunks, one goroutine per worker.
// fn must only write to position i of its output.
func parallelFor(n int, workers int, fn func(i int)) {
	if n == 0 {
		return
	}
	if workers <= 1 || n < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	if workers > n {
		workers = n
	}

	logger := logging.GetLogger("wxindex")
	logger.Debugf("parallel batch: %d elements on %d workers", n, workers)

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start int, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
