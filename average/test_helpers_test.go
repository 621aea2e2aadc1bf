// Package average_test contains test helpers
//
// Purpose:
//   • Small deterministic fixtures and an independent gonum oracle.

package average_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/matavg/matrix"
	"github.com/katalvlaran/matavg/randmat"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// relTol is the relative tolerance for mean comparisons.
const relTol = 1e-9

// approx compares float slices element-wise within relTol.
var approx = cmpopts.EquateApprox(relTol, 0)

// hide wraps any Matrix to hide its concrete type, forcing the At fallback.
type hide struct{ matrix.Matrix }

// errAt is returned by faulty for its poisoned cell.
var errAt = errors.New("test: poisoned cell")

// faulty fails At for one cell and delegates everything else.
type faulty struct {
	matrix.Matrix
	row, col int
}

func (f faulty) At(i, j int) (float64, error) {
	if i == f.row && j == f.col {
		return 0, errAt
	}
	return f.Matrix.At(i, j)
}

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

// mustRandom builds a seeded r×c matrix with values in [1,5].
func mustRandom(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := randmat.New(r, c, randmat.WithSeed(seed))
	require.NoError(t, err)
	return m
}

// oracleMeans computes row and column means with gonum matrix-vector
// products (A·1 and Aᵀ·1), independent of the code under test.
// The gonum view shares d's storage and is only read.
func oracleMeans(t testing.TB, d *matrix.Dense) (rows, cols []float64) {
	t.Helper()
	r, c := d.Rows(), d.Cols()
	a, err := d.ToMat()
	require.NoError(t, err)

	onesC := mat.NewVecDense(c, nil)
	for j := 0; j < c; j++ {
		onesC.SetVec(j, 1)
	}
	onesR := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		onesR.SetVec(i, 1)
	}

	var rs, cs mat.VecDense
	rs.MulVec(a, onesC)
	cs.MulVec(a.T(), onesR)

	rows = make([]float64, r)
	for i := range rows {
		rows[i] = rs.AtVec(i) / float64(c)
	}
	cols = make([]float64, c)
	for j := range cols {
		cols[j] = cs.AtVec(j) / float64(r)
	}
	return rows, cols
}

// requireClose fails with a readable diff when got and want differ beyond relTol.
func requireClose(t testing.TB, want, got []float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("means mismatch (-want +got):\n%s", diff)
	}
}
