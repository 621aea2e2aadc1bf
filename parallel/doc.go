// Package parallel provides the data-parallel loop used by the generator and
// the reducers.
//
// For and ForRange split the index space [0, n) into contiguous chunks and
// run each chunk on its own goroutine, then wait for all of them (the
// implicit barrier at the end of the loop). Iterations must be independent:
// each index may touch only memory no other index writes. No locks are taken
// inside the loop.
//
// The pool size defaults to runtime.GOMAXPROCS(0), the available hardware
// concurrency as seen by the Go scheduler.
package parallel
