// SPDX-License-Identifier: MIT
// Package average: error set.
// Sentinels are matched with errors.Is; the orientation fault additionally
// carries the offending value and operation (errors.As).

package average

import (
	"errors"
	"fmt"
)

// ErrInvalidOrientation is matched by every *OrientationError.
var ErrInvalidOrientation = errors.New("average: invalid orientation")

// OrientationError reports an Orientation outside {ByRows, ByCols}.
type OrientationError struct {
	Op          string      // operation that rejected the value
	Orientation Orientation // the rejected value
}

// Error implements error.
func (e *OrientationError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Op, ErrInvalidOrientation, e.Orientation)
}

// Unwrap lets errors.Is(err, ErrInvalidOrientation) succeed.
func (e *OrientationError) Unwrap() error {
	return ErrInvalidOrientation
}

// averageErrorf wraps an underlying error with an operation tag.
func averageErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
