// SPDX-License-Identifier: MIT
// Package: average
//
// Purpose:
//   - Per-row and per-column arithmetic means with the outer loop split across
//     a worker pool.
//
// Determinism & Performance:
//   - The summation order inside row i or column j depends only on the data,
//     never on the partition of the outer loop; results are bit-identical for
//     any worker count. Columns are summed top to bottom.
//   - *matrix.Dense fast path works on the row-major buffer directly; other
//     Matrix implementations go through At with per-slot error capture.
//   - Column mode walks the buffer row by row over a chunk of columns, so each
//     worker streams contiguous memory.

package average

import (
	"github.com/katalvlaran/matavg/matrix"
	"github.com/katalvlaran/matavg/parallel"
	"gonum.org/v1/gonum/floats"
)

// Operation name constants for error wrapping.
const (
	opMeans    = "average.Means"
	opRowMeans = "average.RowMeans"
	opColMeans = "average.ColMeans"
)

// Means writes the mean of every row (ByRows) or column (ByCols) of m into out.
// Implementation:
//   - Stage 1: Reject an invalid orientation (fail fast, out untouched).
//   - Stage 2: Validate m (non-nil, not released) and len(out).
//   - Stage 3: Reduce in parallel; each output slot written by one iteration.
//
// Inputs:
//   - m: fully populated matrix, read-only for the duration of the call.
//   - orient: ByRows or ByCols.
//   - out: len(out) == m.Rows() for ByRows, m.Cols() for ByCols.
//
// Errors:
//   - *OrientationError (errors.Is ErrInvalidOrientation).
//   - matrix.ErrNilMatrix, matrix.ErrReleased, matrix.ErrDimensionMismatch.
//   - Wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c) total work, spread over the configured workers. Space O(1)
//     on the fast path, O(len(out)) for fallback error slots.
func Means(m matrix.Matrix, orient Orientation, out []float64, opts ...Option) error {
	if !orient.Valid() {
		return &OrientationError{Op: opMeans, Orientation: orient}
	}
	if err := matrix.ValidateLive(m); err != nil {
		return averageErrorf(opMeans, err)
	}

	r, c := m.Rows(), m.Cols()
	n := r
	if orient == ByCols {
		n = c
	}
	if err := matrix.ValidateVecLen(out, n); err != nil {
		return averageErrorf(opMeans, err)
	}
	cfg := newConfig(opts...)

	if d, ok := m.(*matrix.Dense); ok {
		if orient == ByRows {
			denseRowMeans(d, out, cfg.workers)
		} else {
			denseColMeans(d, out, cfg.workers)
		}
		return nil
	}

	if err := genericMeans(m, orient, out, cfg.workers); err != nil {
		return averageErrorf(opMeans, err)
	}

	return nil
}

// RowMeans allocates and returns the per-row means of m (len == Rows()).
func RowMeans(m matrix.Matrix, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateLive(m); err != nil {
		return nil, averageErrorf(opRowMeans, err)
	}
	out := make([]float64, m.Rows())
	if err := Means(m, ByRows, out, opts...); err != nil {
		return nil, averageErrorf(opRowMeans, err)
	}

	return out, nil
}

// ColMeans allocates and returns the per-column means of m (len == Cols()).
func ColMeans(m matrix.Matrix, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateLive(m); err != nil {
		return nil, averageErrorf(opColMeans, err)
	}
	out := make([]float64, m.Cols())
	if err := Means(m, ByCols, out, opts...); err != nil {
		return nil, averageErrorf(opColMeans, err)
	}

	return out, nil
}

// mean divides sum by count, defining the mean of nothing as 0.
func mean(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// denseRowMeans: each worker owns a contiguous block of rows.
func denseRowMeans(d *matrix.Dense, out []float64, workers int) {
	c := d.Cols()
	parallel.ForRange(d.Rows(), workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = mean(floats.Sum(d.Row(i)), c)
		}
	})
}

// denseColMeans: each worker owns a contiguous block of columns [lo,hi) and
// accumulates row slices of that block into out[lo:hi].
func denseColMeans(d *matrix.Dense, out []float64, workers int) {
	r, c := d.Rows(), d.Cols()
	raw := d.Raw()
	parallel.ForRange(c, workers, func(lo, hi int) {
		acc := out[lo:hi]
		for j := range acc {
			acc[j] = 0
		}
		for i := 0; i < r; i++ {
			base := i * c
			floats.Add(acc, raw[base+lo:base+hi])
		}
		for j := range acc {
			acc[j] = mean(acc[j], r)
		}
	})
}

// genericMeans is the At-based path. Each iteration records its own error in
// a private slot; the first non-nil one (lowest index) is returned.
func genericMeans(m matrix.Matrix, orient Orientation, out []float64, workers int) error {
	r, c := m.Rows(), m.Cols()
	errs := make([]error, len(out))

	parallel.For(len(out), workers, func(k int) {
		var (
			s   float64
			v   float64
			err error
		)
		if orient == ByRows {
			for j := 0; j < c; j++ {
				if v, err = m.At(k, j); err != nil {
					errs[k] = err
					return
				}
				s += v
			}
			out[k] = mean(s, c)
			return
		}
		for i := 0; i < r; i++ {
			if v, err = m.At(i, k); err != nil {
				errs[k] = err
				return
			}
			s += v
		}
		out[k] = mean(s, r)
	})

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
