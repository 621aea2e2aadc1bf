// SPDX-License-Identifier: MIT

package parallel

import (
	"runtime"
	"sync"
)

// DefaultWorkers returns the pool size used when callers pass workers <= 0.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Chunks returns the half-open ranges [lo, hi) that ForRange hands to its
// goroutines. Ranges are contiguous, cover [0, n) exactly once and differ in
// length by at most one. The number of ranges is min(n, workers).
// Complexity: O(workers).
func Chunks(n, workers int) [][2]int {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	if workers > n {
		workers = n
	}

	out := make([][2]int, 0, workers)
	size, rem := n/workers, n%workers
	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + size
		// the first rem chunks take one extra index
		if w < rem {
			hi++
		}
		out = append(out, [2]int{lo, hi})
		lo = hi
	}

	return out
}

// ForRange runs fn(lo, hi) for every chunk of [0, n) concurrently and returns
// once all chunks are done. With a single chunk fn runs on the calling
// goroutine. n <= 0 is a no-op.
func ForRange(n, workers int, fn func(lo, hi int)) {
	chunks := Chunks(n, workers)
	switch len(chunks) {
	case 0:
		return
	case 1:
		fn(chunks[0][0], chunks[0][1])
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for _, ch := range chunks {
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(ch[0], ch[1])
	}
	wg.Wait()
}

// For runs fn(i) for every i in [0, n), distributing indices across workers
// goroutines in contiguous chunks. It returns after every call has finished.
func For(n, workers int, fn func(i int)) {
	ForRange(n, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i)
		}
	})
}
