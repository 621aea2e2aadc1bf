// SPDX-License-Identifier: MIT

package randmat

import (
	"fmt"

	"github.com/katalvlaran/matavg/matrix"
	"github.com/katalvlaran/matavg/parallel"
)

const (
	opNew  = "randmat.New"
	opFill = "randmat.Fill"
)

// New allocates a rows×cols matrix and fills it (see Fill).
// Negative dimensions return matrix.ErrBadShape.
// Complexity: O(rows*cols).
func New(rows, cols int, opts ...Option) (*matrix.Dense, error) {
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	if err = Fill(m, opts...); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	return m, nil
}

// Fill overwrites every cell of m with an independent uniform integer in
// [lo, hi] (default [1, 5]) as float64. Nothing besides m is touched.
// Returns matrix.ErrNilMatrix / matrix.ErrReleased for unusable targets.
// Stage 1 (Validate): m must be non-nil and not released.
// Stage 2 (Prepare): resolve options (seed, range, workers).
// Stage 3 (Execute): fill rows in parallel, one derived stream per row.
// Complexity: O(rows*cols) work split across the configured workers.
func Fill(m *matrix.Dense, opts ...Option) error {
	// Validate target
	if err := matrix.ValidateLive(m); err != nil {
		return fmt.Errorf("%s: %w", opFill, err)
	}
	// Resolve configuration
	cfg := newConfig(opts...)

	// Fill rows; each row writes only its own slice
	span := cfg.hi - cfg.lo + 1
	lo := float64(cfg.lo)
	parallel.For(m.Rows(), cfg.workers, func(i int) {
		rng := rowRNG(cfg.seed, i)
		row := m.Row(i)
		for j := range row {
			row[j] = lo + float64(rng.Intn(span))
		}
	})

	return nil
}
