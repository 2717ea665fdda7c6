package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmat/matrix"
)

// ParseGrid parses an inline grid such as "1 2; 3 4": rows are separated by
// semicolons, elements by whitespace. Ragged rows are left for matrix.New to
// reject.
func ParseGrid(s string) ([][]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("parse grid: empty input: %w", matrix.ErrBadShape)
	}

	rows := strings.Split(s, ";")
	grid := make([][]float64, 0, len(rows))
	for i, row := range rows {
		fields := strings.Fields(row)
		if len(fields) == 0 {
			return nil, fmt.Errorf("parse grid: row %d is empty: %w", i, matrix.ErrBadShape)
		}
		vals := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("parse grid: row %d col %d: %w", i, j, err)
			}
			vals[j] = v
		}
		grid = append(grid, vals)
	}

	return grid, nil
}
