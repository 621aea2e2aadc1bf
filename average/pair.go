// SPDX-License-Identifier: MIT

package average

import (
	"context"

	"github.com/katalvlaran/matavg/matrix"
	"golang.org/x/sync/errgroup"
)

const opPair = "average.Pair"

// Pair computes row means into rows and column means into cols as two
// concurrently scheduled tasks over the same matrix, and returns once both
// have finished. Each task runs Means with its own worker pool.
//
// The matrix is only read, and the two tasks write disjoint vectors, so no
// locking is needed. ctx is checked once before the tasks start; running
// reductions are not interrupted. The first task error is returned.
func Pair(ctx context.Context, m matrix.Matrix, rows, cols []float64, opts ...Option) error {
	if err := ctx.Err(); err != nil {
		return averageErrorf(opPair, err)
	}

	var g errgroup.Group
	g.Go(func() error {
		return Means(m, ByRows, rows, opts...)
	})
	g.Go(func() error {
		return Means(m, ByCols, cols, opts...)
	})
	if err := g.Wait(); err != nil {
		return averageErrorf(opPair, err)
	}

	return nil
}
