// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation; no logic is duplicated.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use Identity/Zeros to build matrices with explicit shape and neutral elements.

package matrix

// ---------- Constructors & Utilities ----------

// Zeros returns a new h×w matrix of zero values.
// Errors: ErrInvalidDimensions when h < 1 or w < 1.
// Complexity: O(h*w) zero-init by the runtime.
func Zeros[T Number](h, w int) (*Dense[T], error) {
	if h <= 0 || w <= 0 {
		return nil, matrixErrorf(opZeros, ErrInvalidDimensions)
	}

	return newDense[T](h, w), nil
}

// Identity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Built as Zeros(n, n) followed by n diagonal writes on the fresh buffer.
// Complexity: O(n^2) zeroing + O(n) writes on the diagonal.
//
// AI-Hints: Use as the neutral element of Mul in property tests.
func Identity[T Number](n int) (*Dense[T], error) {
	I, err := Zeros[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1 // fixed i order, single write per diagonal cell
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return Zeros[T](m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity[T](m.Rows())
}

// ---------- Linear Algebra aliases (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T Number](a, b Matrix[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Number](a, b Matrix[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T Number](a, b Matrix[T]) (*Dense[T], error) { return Mul(a, b) }

// InverseOf is an alias for Inverse.
func InverseOf[T Number](m Matrix[T]) (*Dense[float64], error) { return Inverse(m) }

// ---------- Comparison ----------

// Equal reports whether a and b have the same shape and identical elements.
// Two nil operands are not considered equal.
func Equal[T Number](a, b Matrix[T]) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	if da, ok := a.(*Dense[T]); ok {
		return da.Equal(b)
	}
	if db, ok := b.(*Dense[T]); ok {
		return db.Equal(a)
	}
	// Neither side is Dense: compare through At.
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - NaN/Inf tolerances are rejected with ErrNaNInf.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for A·A⁻¹ ≈ I checks.
func AllClose[T Number](a, b Matrix[T], rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
