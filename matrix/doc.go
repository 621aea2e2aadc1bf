// Package matrix provides the owned, contiguous container the reducers work on.
//
// The matrix package provides:
//
//   - Dense: an R×C row-major matrix backed by a single []float64 with
//     row-stride indexing (element (i,j) at data[i*C+j]). One allocation,
//     no per-row lifetime tracking.
//   - Bounds-checked At/Set, shared row views (Row) and the raw buffer (Raw)
//     for tight loops in other packages.
//   - Release: explicit, exactly-once hand-back of the buffer by its owner.
//   - Converters to and from gonum's mat.Dense.
//
// Zero-sized shapes (0×N, N×0) are legal and behave as empty containers.
//
// Concurrency: a Dense is not synchronized. Concurrent readers are safe as
// long as nobody writes; the reducers in package average rely on that.
package matrix
