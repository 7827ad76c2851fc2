// SPDX-License-Identifier: MIT

// Package matrix provides the small row-major float64 table used by the
// layout code for radius tables and grid coordinates.
//
// At/Set return errors and Do/Apply visit cells in row-major order, so
// layout code never indexes raw slices and never panics on a bad index.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error
}
