// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every exported operation returns these sentinels (possibly wrapped
// with an operation tag) and tests check them via errors.Is.
// No method panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Sentinels are returned wrapped as fmt.Errorf("Op: %w", ErrX); callers match
// with errors.Is.
//
// ERROR PRIORITY:
// nil -> released -> shape -> index -> NaN/Inf.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<0 or c<0).
	// Zero-sized shapes are legal and yield an empty container.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions, e.g. ragged
	// input rows or an output vector whose length does not fit the matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value passed to Set.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrReleased is returned by any access to a Dense after Release,
	// including a second Release.
	ErrReleased = errors.New("matrix: storage already released")
)
