// SPDX-License-Identifier: MIT

package average

import "fmt"

// Orientation selects row-wise or column-wise reduction.
type Orientation int

const (
	// ByRows reduces each row: one mean per row, len(out) == Rows().
	ByRows Orientation = iota
	// ByCols reduces each column: one mean per column, len(out) == Cols().
	ByCols
)

// Valid reports whether o is one of the defined orientations.
func (o Orientation) Valid() bool {
	return o == ByRows || o == ByCols
}

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case ByRows:
		return "by-rows"
	case ByCols:
		return "by-cols"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}
