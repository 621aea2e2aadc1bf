// SPDX-License-Identifier: MIT

// Package matrix: Dense is a concrete, row-major implementation of the Matrix
// interface, storing elements in a single flat slice with row-stride indexing.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Operation tags for error wrapping.
const (
	opNewDense    = "NewDense"
	opNewFromRows = "NewFromRows"
	opAt          = "Dense.At"
	opSet         = "Dense.Set"
	opRelease     = "Dense.Release"
)

// matrixErrorf wraps an underlying error with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an underlying error with Dense method and index context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// A Dense has a single owner; after Release every accessor reports ErrReleased.
type Dense struct {
	r, c     int       // number of rows and columns
	data     []float64 // flat backing storage, length == r*c
	released bool      // set once by Release
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols are >= 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewDense, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFromRows builds a Dense from literal rows, copying the values.
// All rows must have the same length; otherwise ErrDimensionMismatch.
// An empty input yields a 0×0 matrix.
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return &Dense{}, nil
	}
	c := len(rows[0])

	d := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opNewFromRows, ErrDimensionMismatch)
		}
		copy(d.data[i*c:(i+1)*c], row)
	}

	return d, nil
}

// Rows returns the number of rows in the matrix (0 after Release).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix (0 after Release).
func (m *Dense) Cols() int {
	return m.c
}

// Released reports whether Release has been called.
func (m *Dense) Released() bool {
	return m.released
}

// indexOf computes the flat index for (row, col).
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if m.released {
		return 0, denseErrorf(method, row, col, ErrReleased)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). NaN and ±Inf are rejected.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(opSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Row returns row i as a slice sharing the backing buffer.
// Writes through the slice modify the matrix. Panics if i is out of range,
// like slice indexing; use At for checked access.
func (m *Dense) Row(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c]
}

// Raw returns the row-major backing buffer (len == Rows()*Cols()).
// Element (i, j) lives at Raw()[i*Cols()+j]. Returns nil after Release.
func (m *Dense) Raw() []float64 {
	return m.data
}

// Clone returns a deep copy of the Dense matrix.
// Cloning a released matrix yields an empty 0×0 matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Release drops the backing buffer so the memory can be reclaimed.
// It must be called exactly once by the owner; a second call returns
// ErrReleased and changes nothing.
func (m *Dense) Release() error {
	if m.released {
		return matrixErrorf(opRelease, ErrReleased)
	}
	m.data = nil
	m.r, m.c = 0, 0
	m.released = true

	return nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
