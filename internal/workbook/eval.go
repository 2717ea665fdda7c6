package workbook

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/rs/zerolog"
)

// Result is the outcome of one step. Matrix is nil for scalar results.
type Result struct {
	Name   string
	Op     string
	Matrix *matrix.Dense[float64]
	Scalar float64
}

// IsScalar reports whether the step produced a number rather than a matrix.
func (r Result) IsScalar() bool { return r.Matrix == nil }

type dense = *matrix.Dense[float64]

// opDef describes one workbook operation.
type opDef struct {
	arity int
	run   func(s Step, args []dense) (Result, error)
}

func matrixResult(m dense, err error) (Result, error) {
	return Result{Matrix: m}, err
}

func scalarResult(v float64, err error) (Result, error) {
	return Result{Scalar: v}, err
}

var ops = map[string]opDef{
	"add": {2, func(_ Step, a []dense) (Result, error) { return matrixResult(matrix.Add(a[0], a[1])) }},
	"sub": {2, func(_ Step, a []dense) (Result, error) { return matrixResult(matrix.Sub(a[0], a[1])) }},
	"neg": {1, func(_ Step, a []dense) (Result, error) { return matrixResult(matrix.Negate(a[0])) }},
	"scale": {1, func(s Step, a []dense) (Result, error) {
		return matrixResult(matrix.Scale(s.Scalar, a[0]))
	}},
	"mul":       {2, func(_ Step, a []dense) (Result, error) { return matrixResult(matrix.Mul(a[0], a[1])) }},
	"transpose": {1, func(_ Step, a []dense) (Result, error) { return matrixResult(matrix.Transpose(a[0])) }},
	"inv":       {1, func(_ Step, a []dense) (Result, error) { return matrixResult(matrix.Inverse(a[0])) }},
	"trace":     {1, func(_ Step, a []dense) (Result, error) { return scalarResult(matrix.Trace(a[0])) }},
	"det":       {1, func(_ Step, a []dense) (Result, error) { return scalarResult(matrix.Determinant(a[0])) }},
	"dot": {2, func(_ Step, a []dense) (Result, error) {
		x, err := vector(a[0])
		if err != nil {
			return Result{}, err
		}
		y, err := vector(a[1])
		if err != nil {
			return Result{}, err
		}
		return scalarResult(matrix.Dot(x, y))
	}},
	"identity": {0, func(s Step, _ []dense) (Result, error) {
		n := s.Scalar
		if n != math.Trunc(n) {
			return Result{}, fmt.Errorf("identity size %v: %w", n, matrix.ErrInvalidDimensions)
		}
		return matrixResult(matrix.Identity[float64](int(n)))
	}},
	"zeros": {0, func(s Step, _ []dense) (Result, error) {
		return matrixResult(matrix.Zeros[float64](s.Rows, s.Cols))
	}},
}

// vector flattens a 1×n row or n×1 column into its elements.
// Any other shape is ErrDimensionMismatch.
func vector(m dense) ([]float64, error) {
	switch {
	case m.Rows() == 1:
		return m.Row(0)
	case m.Cols() == 1:
		return m.Col(0)
	default:
		return nil, fmt.Errorf("dot operand is %dx%d, want a row or column vector: %w",
			m.Rows(), m.Cols(), matrix.ErrDimensionMismatch)
	}
}

// Ops returns the supported operation names in sorted order.
func Ops() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply runs a single step against already resolved operands.
func Apply(s Step, args ...dense) (Result, error) {
	def, ok := ops[s.Op]
	if !ok {
		return Result{}, fmt.Errorf("%w %q", ErrUnknownOp, s.Op)
	}
	if len(args) != def.arity {
		return Result{}, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, s.Op, def.arity, len(args))
	}
	res, err := def.run(s, args)
	if err != nil {
		return Result{}, err
	}
	res.Name, res.Op = s.Name, s.Op
	return res, nil
}

// Evaluator runs workbook documents.
type Evaluator struct {
	log zerolog.Logger
}

// NewEvaluator returns an Evaluator that logs each step at debug level.
func NewEvaluator(log zerolog.Logger) *Evaluator {
	return &Evaluator{log: log}
}

// Evaluate builds every named matrix and runs the steps in order. It stops at
// the first failing step; the error names the step and wraps the cause.
func (e *Evaluator) Evaluate(ctx context.Context, doc *Document) ([]Result, error) {
	env := make(map[string]dense, len(doc.Matrices))
	names := make([]string, 0, len(doc.Matrices))
	for name := range doc.Matrices {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		m, err := matrix.New(doc.Matrices[name])
		if err != nil {
			return nil, fmt.Errorf("matrix %q: %w", name, err)
		}
		env[name] = m
	}

	// scalar step names are reserved too
	taken := make(map[string]bool, len(env)+len(doc.Steps))
	for name := range env {
		taken[name] = true
	}

	results := make([]Result, 0, len(doc.Steps))
	for i, s := range doc.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if s.Name == "" {
			return results, fmt.Errorf("step %d: %w", i, ErrNoName)
		}
		if taken[s.Name] {
			return results, fmt.Errorf("step %q: %w", s.Name, ErrDuplicateName)
		}

		args := make([]dense, 0, len(s.Args))
		for _, ref := range s.Args {
			m, ok := env[ref]
			if !ok {
				return results, fmt.Errorf("step %q: %w %q", s.Name, ErrUnknownRef, ref)
			}
			args = append(args, m)
		}

		res, err := Apply(s, args...)
		if err != nil {
			e.log.Debug().Str("step", s.Name).Str("op", s.Op).Err(err).Msg("step failed")
			return results, fmt.Errorf("step %q (%s): %w", s.Name, s.Op, err)
		}
		taken[s.Name] = true
		if !res.IsScalar() {
			env[s.Name] = res.Matrix
		}
		results = append(results, res)

		ev := e.log.Debug().Str("step", s.Name).Str("op", s.Op)
		if res.IsScalar() {
			ev = ev.Float64("value", res.Scalar)
		} else {
			ev = ev.Int("rows", res.Matrix.Rows()).Int("cols", res.Matrix.Cols())
		}
		ev.Msg("step evaluated")
	}

	return results, nil
}
