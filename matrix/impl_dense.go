// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row/Col return errors instead of panicking.
//   - Keep value semantics: a Dense is never written after construction, and no
//     accessor hands out its backing slice.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on the flat data slice directly.
//   - Use Row/Col for copies of one line; use Grid for a full [][]T copy.
//
// Complexity quicksheet:
//   - New: O(r*c) copy; At: O(1); Row: O(c); Col: O(r); Grid: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew = "New" // ctor tag
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
	ctxCol = "Col" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtSep     = " "
	_fmtRowTerm = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense is immutable: every operation that "changes" a matrix allocates a new one.
type Dense[T Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// New builds a Dense from a grid of rows. The grid is copied; later writes to
// grid do not affect the matrix.
//
// Implementation:
//   - Stage 1: ValidateGrid (non-empty, non-empty first row, rectangular).
//   - Stage 2: copy rows into one flat buffer.
//
// Errors:
//   - ErrBadShape (empty or ragged grid).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](grid [][]T) (*Dense[T], error) {
	if err := ValidateGrid(grid); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNew, err)
	}
	rows, cols := len(grid), len(grid[0])
	buf := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		copy(buf[i*cols:(i+1)*cols], grid[i])
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// MustNew is like New but panics on a bad grid. Intended for literals in
// tests and examples where the shape is known to be valid.
func MustNew[T Number](grid [][]T) *Dense[T] {
	m, err := New(grid)
	if err != nil {
		panic(err)
	}

	return m
}

// newDense allocates an r×c zero matrix. Callers guarantee r,c ≥ 1.
func newDense[T Number](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Row returns a copy of row r.
// Errors: ErrOutOfRange when r is outside [0, Rows()).
// Complexity: O(c).
func (m *Dense[T]) Row(r int) ([]T, error) {
	if r < 0 || r >= m.r {
		return nil, denseErrorf(ctxRow, r, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.rowSlice(r))

	return out, nil
}

// Col returns a copy of column c.
// Errors: ErrOutOfRange when c is outside [0, Cols()).
// Complexity: O(r).
func (m *Dense[T]) Col(c int) ([]T, error) {
	if c < 0 || c >= m.c {
		return nil, denseErrorf(ctxCol, 0, c, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+c]
	}

	return out, nil
}

// rowSlice exposes row r of the backing buffer to package kernels only.
// Callers must treat the result as read-only.
func (m *Dense[T]) rowSlice(r int) []T {
	return m.data[r*m.c : (r+1)*m.c]
}

// Grid returns a deep copy of the matrix as [][]T.
// Complexity: O(r*c).
func (m *Dense[T]) Grid() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.rowSlice(i))
	}

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Equal reports whether o has the same shape and exactly the same elements.
// A nil o is never equal.
func (m *Dense[T]) Equal(o Matrix[T]) bool {
	if isNil(o) || m.r != o.Rows() || m.c != o.Cols() {
		return false
	}
	if od, ok := o.(*Dense[T]); ok {
		for idx := range m.data {
			if m.data[idx] != od.data[idx] {
				return false
			}
		}
		return true
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, err := o.At(i, j)
			if err != nil || v != m.data[i*m.c+j] {
				return false
			}
		}
	}

	return true
}

// String renders one line per row, elements separated by a single space.
// Intended for debugging and printing; not a parseable serialization.
//
// Example: [[1 2] [3 4]] renders as "1 2\n3 4\n".
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprint(&b, m.data[base+j])
		}
		b.WriteString(_fmtRowTerm)
	}

	return b.String()
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ Matrix[int]     = (*Dense[int])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)
