// Package matavg is a small data-parallel reduction benchmark: it fills a
// matrix with random integers and computes the mean of every row and every
// column, running both reductions at once and splitting each across all CPUs.
//
// Under the hood, everything is organized into focused subpackages:
//
//	matrix/   Dense: owned, contiguous row-major container + gonum bridge
//	randmat/  seeded uniform integer generator ([1,5] by default)
//	parallel/ data-parallel loop over contiguous index chunks
//	average/  per-row / per-column means and the concurrent row+column pair
//	runner/   one timed run: workspace lifecycle and console report
//
// The command lives in cmd/matavg:
//
//	go run ./cmd/matavg -print
package matavg
