// Package matrix is a small dense-matrix value type for basic numeric work.
//
// The matrix package provides:
//
//   - Dense[T], an immutable row-major matrix over signed integer or float
//     elements, built with New (from a grid), Zeros or Identity.
//   - Element-wise kernels: Add, Sub, Negate, Scale/ScaleBy.
//   - Mul, Transpose, Dot and Trace.
//   - Determinant and Inverse for 1×1 and 2×2 matrices only. Larger square
//     inputs fail with ErrNotImplemented.
//
// Every operation returns a new matrix and never writes through an operand,
// so a Dense can be shared across goroutines without locking.
//
// Errors are package sentinels (ErrBadShape, ErrDimensionMismatch,
// ErrNonSquare, ErrNotImplemented, ErrSingular, ErrOutOfRange, ...) and
// are matched with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
