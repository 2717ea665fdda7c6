package workbook

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvmat/matrix"
	toml "github.com/pelletier/go-toml/v2"
)

// WriteText renders results as "name = value" for scalars and "name =" followed
// by the matrix rows for matrices. precision follows matrix.WithPrecision.
func WriteText(w io.Writer, results []Result, precision int) error {
	for _, r := range results {
		var err error
		if r.IsScalar() {
			_, err = fmt.Fprintf(w, "%s = %s\n", r.Name, strconv.FormatFloat(r.Scalar, 'f', precision, 64))
		} else {
			_, err = fmt.Fprintf(w, "%s =\n%s", r.Name, matrix.Format(r.Matrix, matrix.WithPrecision(precision)))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type encodedResult struct {
	Name   string      `toml:"name"`
	Op     string      `toml:"op"`
	Matrix [][]float64 `toml:"matrix,omitempty"`
	Scalar *float64    `toml:"scalar,omitempty"`
}

type encodedResults struct {
	Results []encodedResult `toml:"results"`
}

// EncodeTOML renders results as a TOML document with one [[results]] entry per step.
func EncodeTOML(results []Result) ([]byte, error) {
	out := encodedResults{Results: make([]encodedResult, 0, len(results))}
	for _, r := range results {
		er := encodedResult{Name: r.Name, Op: r.Op}
		if r.IsScalar() {
			v := r.Scalar
			er.Scalar = &v
		} else {
			er.Matrix = r.Matrix.Grid()
		}
		out.Results = append(out.Results, er)
	}

	b, err := toml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode results: %w", err)
	}
	return b, nil
}
