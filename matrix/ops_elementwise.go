// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) to avoid
//     duplicating tight loops across Add/Sub/Negate/Scale and AllClose.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* are unexported micro-kernels.
//   - Public API uses these via thin wrappers (impl_linear_algebra.go, api.go).
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import (
	"fmt"
	"math"
)

// ewMap computes out[i,j] = f(X[i,j]) into a fresh Dense.
// X must be non-nil (caller validated).
// Time: O(r*c). Space: O(r*c).
func ewMap[T Number](opTag string, X Matrix[T], f func(T) T) (*Dense[T], error) {
	r, c := X.Rows(), X.Cols()
	out := newDense[T](r, c)

	// Dense fast-path: single flat loop.
	if d, ok := X.(*Dense[T]); ok {
		for idx, v := range d.data {
			out.data[idx] = f(v)
		}
		return out, nil
	}

	// Generic fallback via At.
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[i*c+j] = f(v)
		}
	}

	return out, nil
}

// ewZip computes out[i,j] = f(a[i,j], b[i,j]) into a fresh Dense.
// a and b must be non-nil and of identical shape (caller validated).
// Time: O(r*c). Space: O(r*c).
func ewZip[T Number](opTag string, a, b Matrix[T], f func(x, y T) T) (*Dense[T], error) {
	r, c := a.Rows(), a.Cols()
	out := newDense[T](r, c)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range out.data {
				out.data[idx] = f(da.data[idx], db.data[idx])
			}
			return out, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv T
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[i*c+j] = f(av, bv)
		}
	}

	return out, nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - comparisons run in float64 regardless of T.
func ewAllClose[T Number](a, b Matrix[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	within := func(x, y T) bool {
		fx, fy := float64(x), float64(y)
		return math.Abs(fx-fy) <= atol+rtol*math.Abs(fy)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range da.data {
				if !within(da.data[idx], db.data[idx]) {
					return false, nil // early-exit on first violation
				}
			}
			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	r, c := a.Rows(), a.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !within(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
