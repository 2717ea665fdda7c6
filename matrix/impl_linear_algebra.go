// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, negation, scalar scaling,
// matrix multiplication, transpose and the dot product. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags for determinism and error reporting.
//
// Notes:
//   - Every kernel returns a freshly allocated *Dense; operands are never mutated.
//   - All kernels use central validators and wrap via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opNegate      = "Negate"
	opScale       = "Scale"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opDot         = "Dot"
	opTrace       = "Trace"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opAllClose    = "AllClose"
	opIdentity    = "Identity"
	opZeros       = "Zeros"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Number](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return ewZip(opAdd, a, b, func(x, y T) T { return x + y })
}

// Sub computes the element-wise difference C = A - B.
// Same contract as Add. The difference is computed directly; the result equals
// Add(a, Negate(b)) element for element.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[T Number](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return ewZip(opSub, a, b, func(x, y T) T { return x - y })
}

// Negate returns -m (unary sign flip of every element). Not a subtraction.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Negate[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNegate, err)
	}

	return ewMap(opNegate, m, func(v T) T { return -v })
}

// Scale returns k·m, a new matrix whose elements are k * m[i,j].
// The scalar-on-the-left form; see ScaleBy for m·k. Both give identical results.
//
// Notes:
//   - k = 0 yields an explicit zero matrix with the same shape.
//   - Matrix×matrix is Mul, never Scale.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale[T Number](k T, m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return ewMap(opScale, m, func(v T) T { return k * v })
}

// ScaleBy returns m·k (scalar on the right). It delegates to Scale so that
// the two operand orders can never diverge.
func ScaleBy[T Number](m Matrix[T], k T) (*Dense[T], error) { return Scale(k, m) }

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Element (i,j) of the result equals element (j,i) of m. The result never
// aliases m's storage.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense[T](cols, rows) // dims flipped

	// Fast-path for Dense → Dense: data[i*cols + j] → res.data[j*rows + i]
	var i, j int
	if dm, ok := m.(*Dense[T]); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Dot returns Σ v1[i]*v2[i].
// Errors: ErrDimensionMismatch when the lengths differ.
// Two empty vectors have a dot product of zero.
//
// Example: Dot([1,2,3], [1,2,3]) = 1 + 4 + 9 = 14.
func Dot[T Number](v1, v2 []T) (T, error) {
	if err := ValidateVecLen(v1, v2); err != nil {
		var zero T
		return zero, matrixErrorf(opDot, err)
	}

	return dot(v1, v2), nil
}

// dot is the unchecked kernel behind Dot and Mul. Fixed 0..n-1 accumulation order.
func dot[T Number](x, y []T) T {
	var sum T
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Bᵀ is formed once; then C[i,j] = Dot(row i of A, row j of Bᵀ).
//     Rows of a *Dense A are read in place; any other A has each row copied once.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed i→j loop order; each dot accumulates k = 0..n-1.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n*c).
//
// AI-Hints:
//   - Both operands stream contiguously after the transpose, which keeps the inner loop cache-friendly.
func Mul[T Number](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	bT, err := Transpose(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDense[T](aRows, bCols)

	da, dense := a.(*Dense[T])
	var arow []T
	if !dense {
		arow = make([]T, inner) // scratch row for the fallback path
	}

	var i, j, k int
	for i = 0; i < aRows; i++ {
		if dense {
			arow = da.rowSlice(i)
		} else {
			for k = 0; k < inner; k++ {
				if arow[k], err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
			}
		}
		for j = 0; j < bCols; j++ {
			res.data[i*bCols+j] = dot(arow, bT.rowSlice(j))
		}
	}

	return res, nil
}
