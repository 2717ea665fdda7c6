// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/square checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing (except ValidateGrid, which reads only).
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"reflect"
)

// MaxClosedFormSize is the largest square dimension for which Determinant
// and Inverse are defined (direct formula evaluation, no elimination).
const MaxClosedFormSize = 2

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is nil, including a typed nil pointer inside the interface.
func isNil[T Number](m Matrix[T]) bool {
	if m == nil {
		return true
	}
	if d, ok := m.(*Dense[T]); ok {
		return d == nil
	}
	v := reflect.ValueOf(m)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (or a typed nil pointer).
// Complexity: O(1).
func ValidateNotNil[T Number](m Matrix[T]) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape[T Number](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare[T Number](m Matrix[T]) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
// Complexity: O(1).
func ValidateBinarySameShape[T Number](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
// Complexity: O(1).
func ValidateSquareNonNil[T Number](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateClosedForm – Composite: NotNil → Square → n ≤ MaxClosedFormSize.
// The size gate is a scope boundary: 3×3 and larger fail with ErrNotImplemented.
// Complexity: O(1).
func ValidateClosedForm[T Number](m Matrix[T]) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateClosedForm", err)
	}
	if m.Rows() > MaxClosedFormSize {
		return validatorErrorf(fmt.Sprintf("ValidateClosedForm: %dx%d", m.Rows(), m.Cols()), ErrNotImplemented)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Complexity: O(1).
func ValidateMulCompatible[T Number](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures two vectors have equal length.
// Time: O(1). Space: O(1).
func ValidateVecLen[T Number](x, y []T) error {
	if len(x) != len(y) {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: %d vs %d", len(x), len(y)), ErrDimensionMismatch)
	}

	return nil
}

// ValidateGrid checks a construction grid: at least one row, a non-empty
// first row, and every row of the same length.
// Complexity: O(rows).
func ValidateGrid[T Number](grid [][]T) error {
	if len(grid) == 0 {
		return validatorErrorf("ValidateGrid: no rows", ErrBadShape)
	}
	cols := len(grid[0])
	if cols == 0 {
		return validatorErrorf("ValidateGrid: empty row 0", ErrBadShape)
	}
	for i := 1; i < len(grid); i++ {
		if len(grid[i]) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateGrid: row %d has %d cols, want %d", i, len(grid[i]), cols), ErrBadShape)
		}
	}

	return nil
}
