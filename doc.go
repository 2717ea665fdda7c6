// Package lvmat is a small dense-matrix toolkit: an immutable generic matrix
// value type plus a command-line calculator built on top of it.
//
// What is inside?
//
//	matrix/            : Dense[T] over signed integers and floats: construction,
//	                     add/sub/negate/scale, multiply, transpose, dot, trace,
//	                     and closed-form determinant & inverse for 1×1 and 2×2
//	internal/workbook/ : TOML workbooks of named matrices and ordered steps
//	internal/watch/    : re-evaluation on file save (fsnotify)
//	internal/cliconfig : config file, MATCALC_* environment and flag layering
//	internal/logging/  : zerolog console/JSON loggers
//	cmd/matcalc/       : the `matcalc eval` and `matcalc calc` commands
//
// Quick example:
//
//	a := matrix.MustNew([][]float64{{1, 2}, {3, 4}})
//	inv, _ := matrix.Inverse(a)
//	fmt.Print(inv)
//	// -2 1
//	// 1.5 -0.5
//
// Every failure is returned as an error wrapping one of the matrix sentinels
// (ErrBadShape, ErrDimensionMismatch, ErrNonSquare, ErrNotImplemented,
// ErrSingular, ErrOutOfRange), so callers branch with errors.Is.
//
//	go get github.com/katalvlaran/lvmat/matrix
package lvmat
