// SPDX-License-Identifier: MIT

package runner

import (
	"fmt"

	"github.com/katalvlaran/matavg/matrix"
)

const (
	opNewWorkspace = "runner.NewWorkspace"
	opRelease      = "Workspace.Release"
)

// Workspace owns the matrix and both mean vectors of one run.
type Workspace struct {
	Matrix   *matrix.Dense
	RowMeans []float64 // len == Matrix.Rows()
	ColMeans []float64 // len == Matrix.Cols()

	released bool
}

// NewWorkspace allocates a rows×cols matrix and the two output vectors.
func NewWorkspace(rows, cols int) (*Workspace, error) {
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewWorkspace, err)
	}

	return &Workspace{
		Matrix:   m,
		RowMeans: make([]float64, rows),
		ColMeans: make([]float64, cols),
	}, nil
}

// Released reports whether Release has completed.
func (w *Workspace) Released() bool {
	return w.released
}

// Release hands back the matrix and both vectors. A second call returns
// matrix.ErrReleased and frees nothing.
// Stage 1 (Validate): refuse a double release.
// Stage 2 (Execute): release the matrix, then drop both vectors.
// Stage 3 (Finalize): mark the workspace released.
func (w *Workspace) Release() error {
	if w.released {
		return fmt.Errorf("%s: %w", opRelease, matrix.ErrReleased)
	}
	if err := w.Matrix.Release(); err != nil {
		return fmt.Errorf("%s: %w", opRelease, err)
	}
	// Vectors are plain slices; dropping the references frees them.
	w.RowMeans = nil
	w.ColMeans = nil
	w.released = true

	return nil
}
