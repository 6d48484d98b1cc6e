package parallel

import (
	"runtime"
	"sync"
)

// DefaultWorkers is used when For is called with workers <= 0.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// For executes fn in parallel over the range [0, n), split into contiguous
// chunks of at least minChunk elements. Each chunk is handed to exactly one
// call of fn.
func For(n, minChunk, workers int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	if minChunk < 1 {
		minChunk = 1
	}
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
