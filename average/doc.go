// Package average computes the arithmetic mean of every row or every column
// of a matrix.
//
// Two layers of concurrency are involved:
//
//   - Means parallelizes the outer loop of one orientation across a worker
//     pool (package parallel). Each row or column mean is an independent unit
//     of work written to its own output slot, so no accumulator is shared and
//     no lock is taken.
//   - Pair runs the by-rows and by-columns computations as two concurrent
//     tasks over the same read-only matrix and joins both.
//
// Results are identical for any worker count: the summation order inside a
// single row or column does not depend on how the outer loop is partitioned.
//
// The mean of an empty row (C == 0) or empty column (R == 0) is 0.
//
// An Orientation outside {ByRows, ByCols} is a programming error. It is
// reported as *OrientationError before any work starts and before any output
// slot is written.
package average
