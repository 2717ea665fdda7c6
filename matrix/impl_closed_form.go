// SPDX-License-Identifier: MIT

// Package matrix - trace and the closed-form (1×1 / 2×2) determinant and inverse.
//
// Purpose:
//   - Trace for any square matrix.
//   - Determinant/Inverse by direct formula only, gated at MaxClosedFormSize.
//     Larger square inputs fail with ErrNotImplemented; there is no elimination
//     or cofactor fallback.
//
// Error order (enforced in tests):
//   nil → not square → size gate → singular.

package matrix

import "fmt"

// Trace returns Σ m[i,i].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n), Space O(1).
func Trace[T Number](m Matrix[T]) (T, error) {
	var sum T
	if err := ValidateSquareNonNil(m); err != nil {
		return sum, matrixErrorf(opTrace, err)
	}

	n := m.Rows()
	if d, ok := m.(*Dense[T]); ok {
		for i := 0; i < n; i++ {
			sum += d.data[i*n+i]
		}
		return sum, nil
	}

	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		if err != nil {
			var zero T
			return zero, matrixErrorf(opTrace, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		sum += v
	}

	return sum, nil
}

// corners reads a, b, c, d of a 2×2 matrix [[a, b], [c, d]].
func corners[T Number](m Matrix[T]) (a, b, c, d T, err error) {
	if a, err = m.At(0, 0); err != nil {
		return
	}
	if b, err = m.At(0, 1); err != nil {
		return
	}
	if c, err = m.At(1, 0); err != nil {
		return
	}
	d, err = m.At(1, 1)

	return
}

// Determinant returns det(m) for a 1×1 or 2×2 matrix.
//
// Implementation:
//   - 1×1: the single element.
//   - 2×2: a*d − b*c.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotImplemented (n > 2).
//
// Notes:
//   - Evaluated in T; integer element types may overflow for large entries.
func Determinant[T Number](m Matrix[T]) (T, error) {
	var zero T
	if err := ValidateClosedForm(m); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}

	if m.Rows() == 1 {
		v, err := m.At(0, 0)
		if err != nil {
			return zero, matrixErrorf(opDeterminant, err)
		}
		return v, nil
	}

	a, b, c, d, err := corners(m)
	if err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}

	return a*d - b*c, nil
}

// Inverse returns m⁻¹ for a 1×1 or 2×2 matrix as a float64 Dense, so integer
// inputs get real-valued reciprocals.
//
// Implementation:
//   - 1×1: [1 / a]; ErrSingular when a == 0.
//   - 2×2: det = a*d - b*c computed in float64; ErrSingular when det == 0; otherwise
//     Scale(1/det, [[d, -b], [-c, a]]). The reciprocal is applied to the whole
//     adjugate through Scale, never per element ad hoc.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotImplemented (n > 2), ErrSingular.
//
// Complexity:
//   - O(1).
func Inverse[T Number](m Matrix[T]) (*Dense[float64], error) {
	if err := ValidateClosedForm(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	if m.Rows() == 1 {
		v, err := m.At(0, 0)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		if v == 0 {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		return &Dense[float64]{r: 1, c: 1, data: []float64{1 / float64(v)}}, nil
	}

	a, b, c, d, err := corners(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	// evaluated in float64 so narrow integer types cannot overflow
	fa, fb, fc, fd := float64(a), float64(b), float64(c), float64(d)
	det := fa*fd - fb*fc
	if det == 0 {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det = 0: %w", ErrSingular))
	}

	adj := &Dense[float64]{r: 2, c: 2, data: []float64{
		fd, -fb,
		-fc, fa,
	}}

	inv, err := Scale(1/det, Matrix[float64](adj))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
