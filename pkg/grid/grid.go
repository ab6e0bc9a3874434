// Package grid arranges flat sequences into rectangular, column-major layouts.
//
// Given an ordered sequence of items and a target column count, [Layout]
// distributes the items down each column first, then across columns left to
// right, padding with a placeholder so the result forms a perfect
// rows x columns rectangle. Reading the result row by row produces the
// familiar "newspaper column" fill.
//
// The package is generic over the cell type; callers supply their own
// placeholder value for the padded cells.
package grid

import (
	"github.com/matzehuels/swatchbook/pkg/errors"
)

// Rows returns the number of rows needed to fit n items into the given
// number of columns, i.e. ceil(n/columns). It does not validate columns.
func Rows(n, columns int) int {
	return (n + columns - 1) / columns
}

// Layout reorders items into a column-major rectangle with the given number
// of columns, padding with placeholder so the result has exactly
// rows*columns cells, where rows = ceil(len(items)/columns).
//
// The original sequence fills column 0 top to bottom, then column 1, and so
// on; the returned slice is the row-major flattening of that arrangement.
// Reading every rows-th element starting at offsets 0..rows-1 reconstructs
// the original items followed by the placeholders.
//
// An empty items slice yields an empty result. Layout returns an
// INVALID_COLUMNS error when columns <= 0.
func Layout[T any](items []T, columns int, placeholder T) ([]T, error) {
	if columns <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidColumns, "columns must be positive, got %d", columns)
	}

	rows := Rows(len(items), columns)

	padded := make([]T, rows*columns)
	copy(padded, items)
	for i := len(items); i < len(padded); i++ {
		padded[i] = placeholder
	}

	// Transpose the (columns, rows) fill into row-major order.
	out := make([]T, rows*columns)
	for c := 0; c < columns; c++ {
		for r := 0; r < rows; r++ {
			out[r*columns+c] = padded[c*rows+r]
		}
	}
	return out, nil
}
