// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering (Format).
// This file defines:
//   - FormatOption / formatOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherFormatOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Zero options reproduce String() exactly.
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision (-1) prints every element with its shortest exact form,
	// the same as String().
	DefaultPrecision = -1

	// DefaultSeparator sits between two elements of a row.
	DefaultSeparator = _fmtSep
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= -1"
	panicSeparatorEmpty   = "matrix: WithSeparator: separator must not be empty"
)

// FormatOption mutates internal format options. Safe to apply repeatedly.
type FormatOption func(*formatOptions)

type formatOptions struct {
	precision int    // digits after the decimal point for float elements; -1 = shortest
	separator string // between elements of a row
}

// WithPrecision fixes the number of digits after the decimal point for float
// element types. Integer element types ignore it. -1 restores the default.
// Panics if p < -1.
func WithPrecision(p int) FormatOption {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *formatOptions) { o.precision = p }
}

// WithSeparator sets the string placed between elements of a row.
// Panics on an empty separator: rows would become unreadable.
func WithSeparator(sep string) FormatOption {
	if sep == "" {
		panic(panicSeparatorEmpty)
	}

	return func(o *formatOptions) { o.separator = sep }
}

// gatherFormatOptions applies user options over the defaults in order.
func gatherFormatOptions(user ...FormatOption) formatOptions {
	o := formatOptions{precision: DefaultPrecision, separator: DefaultSeparator}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Format renders m one row per line like String, honoring opts.
// A nil m renders as the empty string.
//
// Complexity: O(r*c).
func Format[T Number](m *Dense[T], opts ...FormatOption) string {
	if m == nil {
		return ""
	}
	o := gatherFormatOptions(opts...)
	fixed := o.precision >= 0 && !isIntegral[T]()

	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(o.separator)
			}
			v := m.data[i*m.c+j]
			if fixed {
				b.WriteString(strconv.FormatFloat(float64(v), 'f', o.precision, 64))
			} else {
				fmt.Fprint(&b, v)
			}
		}
		b.WriteString(_fmtRowTerm)
	}

	return b.String()
}
