// Package workbook evaluates TOML workbooks: a table of named matrices and an
// ordered list of steps, each applying one matrix operation to earlier names.
//
//	[matrices]
//	A = [[1, 2], [3, 4]]
//	B = [[5, 6], [7, 8]]
//
//	[[steps]]
//	name = "C"
//	op   = "mul"
//	args = ["A", "B"]
//
// Matrix-valued steps bind their result under name for later steps;
// scalar-valued steps (trace, det, dot) only produce output.
package workbook

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Sentinel errors.
var (
	ErrUnknownOp     = errors.New("workbook: unknown op")
	ErrUnknownRef    = errors.New("workbook: unknown reference")
	ErrDuplicateName = errors.New("workbook: duplicate name")
	ErrArity         = errors.New("workbook: wrong number of arguments")
	ErrNoName        = errors.New("workbook: step has no name")
)

// Document is the decoded form of a workbook file.
type Document struct {
	Matrices map[string][][]float64 `toml:"matrices"`
	Steps    []Step                 `toml:"steps"`
}

// Step is one operation in a workbook.
type Step struct {
	Name   string   `toml:"name"`
	Op     string   `toml:"op"`
	Args   []string `toml:"args"`
	Scalar float64  `toml:"scalar"`
	Rows   int      `toml:"rows"`
	Cols   int      `toml:"cols"`
}

// Load reads and decodes the workbook at path.
func Load(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode parses a workbook from TOML bytes.
func Decode(b []byte) (*Document, error) {
	var doc Document
	if err := toml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode workbook: %w", err)
	}
	return &doc, nil
}
