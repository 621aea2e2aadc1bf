// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matavg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseBadShape ensures that NewDense rejects negative dimensions.
func TestNewDenseBadShape(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNewDenseZeroSize verifies that zero-sized shapes are legal and empty.
func TestNewDenseZeroSize(t *testing.T) {
	m, err := matrix.NewDense(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.Empty(t, m.Raw())

	m, err = matrix.NewDense(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 0, m.Cols())
	assert.Empty(t, m.Row(2)) // a zero-width row is still addressable
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	require.Len(t, m.Raw(), rows*cols)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf checks the finite-value policy of Set.
func TestSetRejectsNaNInf(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	// row-major layout: (1,2) sits at 1*3+2
	require.Equal(t, 7.89, m.Raw()[5])
}

// TestRowSharesStorage confirms Row returns a view, not a copy.
func TestRowSharesStorage(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row := m.Row(1)
	require.Equal(t, []float64{3, 4}, row)

	row[0] = 30
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 30.0, v)
}

// TestNewFromRows covers the literal constructor including ragged input.
func TestNewFromRows(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Raw())

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	empty, err := matrix.NewFromRows(nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())
}

// TestClone ensures the copy is independent of the original.
func TestClone(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, m.Set(0, 0, 99))

	v, err := c.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestReleaseExactlyOnce checks the single-owner lifetime contract.
func TestReleaseExactlyOnce(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.False(t, m.Released())

	require.NoError(t, m.Release())
	require.True(t, m.Released())
	require.Nil(t, m.Raw())
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())

	// second release is reported, not silently ignored
	require.ErrorIs(t, m.Release(), matrix.ErrReleased)

	_, err = m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrReleased)
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrReleased)
}

// TestString checks the debugging representation.
func TestString(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2.5}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2.5]\n[3, 4]\n", m.String())
}
