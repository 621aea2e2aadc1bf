// SPDX-License-Identifier: MIT

// Package matrix: converters between Dense and gonum's mat.Dense, so results
// can be handed to gonum linear-algebra routines (or checked against them).
package matrix

import "gonum.org/v1/gonum/mat"

const (
	opToMat   = "Dense.ToMat"
	opFromMat = "FromMat"
)

// ToMat returns a *mat.Dense that SHARES the backing buffer with m.
// Writes through either view are visible in the other. gonum does not
// support zero-length dimensions, so a 0×N or N×0 matrix returns ErrBadShape.
// Complexity: O(1).
func (m *Dense) ToMat() (*mat.Dense, error) {
	if m.released {
		return nil, matrixErrorf(opToMat, ErrReleased)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(opToMat, ErrBadShape)
	}

	return mat.NewDense(m.r, m.c, m.data), nil
}

// FromMat copies any gonum matrix into a new Dense.
// A *mat.Dense is copied row by row from its raw storage (honouring Stride);
// other implementations go through At.
// Complexity: O(r*c).
func FromMat(a mat.Matrix) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opFromMat, ErrNilMatrix)
	}
	r, c := a.Dims()
	d, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromMat, err)
	}

	var i, j int
	if md, ok := a.(*mat.Dense); ok {
		raw := md.RawMatrix()
		for i = 0; i < r; i++ {
			copy(d.data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
		return d, nil
	}

	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			d.data[i*c+j] = a.At(i, j)
		}
	}

	return d, nil
}
