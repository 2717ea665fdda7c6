// SPDX-License-Identifier: MIT

// Package matrix: element constraint and the read-only Matrix interface.
// This file contains ONLY domain-facing types. Errors and
// options live in dedicated files (errors.go, options.go).
package matrix

// Number is the set of element types a Dense may hold.
// Unsigned integers are excluded so Negate is always a true sign flip.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Matrix is a read-only two-dimensional grid of T values.
// There is no Set: every kernel returns a fresh *Dense and never writes
// through an operand, so a Matrix may be shared freely between goroutines.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Number] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)
}

// isIntegral reports whether T is an integer type.
// 1/2 truncates to zero only under integer division.
func isIntegral[T Number]() bool {
	return T(1)/T(2) == 0
}
