// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewShape verifies that Rows/Cols mirror the construction grid.
func TestNewShape(t *testing.T) {
	for _, grid := range [][][]float64{
		{{7}},
		{{1, 2, 3}},
		{{1}, {2}, {3}},
		RandGrid(4, 6, 1),
	} {
		m, err := matrix.New(grid)
		require.NoError(t, err)
		require.Equal(t, len(grid), m.Rows())
		require.Equal(t, len(grid[0]), m.Cols())
	}
}

// TestNewBadShape ensures that New rejects empty and ragged grids.
func TestNewBadShape(t *testing.T) {
	tests := []struct {
		name string
		grid [][]int
	}{
		{"nil grid", nil},
		{"no rows", [][]int{}},
		{"empty first row", [][]int{{}}},
		{"ragged short", [][]int{{1, 2}, {3}}},
		{"ragged long", [][]int{{1, 2}, {3, 4}, {5, 6, 7}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.New(tc.grid)
			require.ErrorIs(t, err, matrix.ErrBadShape)
			require.Nil(t, m)
		})
	}
}

// TestNewCopiesGrid ensures later writes to the source grid do not leak into the matrix.
func TestNewCopiesGrid(t *testing.T) {
	grid := [][]int{{1, 2}, {3, 4}}
	m := MustNew(t, grid)
	grid[0][0] = 99

	require.Equal(t, 1, MustAt[int](t, m, 0, 0))
}

func TestMustNewPanicsOnBadGrid(t *testing.T) {
	require.Panics(t, func() { matrix.MustNew([][]float64{{1}, {}}) })
}

// TestAtOutOfRange ensures At() returns ErrOutOfRange on invalid access.
func TestAtOutOfRange(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 2}, {3, 4}})

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", ij[0], ij[1])
	}

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

// TestRowCol checks row/column copies and their bounds.
func TestRowCol(t *testing.T) {
	m := MustNew(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 6}, col)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestAccessorsDoNotAlias ensures Row/Col/Grid hand out copies.
func TestAccessorsDoNotAlias(t *testing.T) {
	m := MustNew(t, [][]int{{1, 2}, {3, 4}})

	row, _ := m.Row(0)
	row[0] = 100
	col, _ := m.Col(1)
	col[1] = 100
	grid := m.Grid()
	grid[1][0] = 100

	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.Grid())
}

func TestIsSquareAndShape(t *testing.T) {
	sq := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	wide := MustNew(t, [][]float64{{1, 2, 3}})

	assert.True(t, sq.IsSquare())
	assert.False(t, wide.IsSquare())

	r, c := wide.Shape()
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)
}

// TestDoVisitsRowMajor checks visit order and early stop.
func TestDoVisitsRowMajor(t *testing.T) {
	m := MustNew(t, [][]int{{1, 2}, {3, 4}})

	var seen []int
	m.Do(func(i, j, v int) bool {
		seen = append(seen, v)
		return true
	})
	require.Equal(t, []int{1, 2, 3, 4}, seen)

	seen = seen[:0]
	m.Do(func(i, j, v int) bool {
		seen = append(seen, v)
		return len(seen) < 2
	})
	require.Equal(t, []int{1, 2}, seen)
}

func TestDenseEqual(t *testing.T) {
	a := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	c := MustNew(t, [][]float64{{1, 2}, {3, 5}})
	d := MustNew(t, [][]float64{{1, 2, 3, 4}})

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(hide[float64]{b}))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))
}

// TestStringOutput checks that String() renders space-separated rows.
func TestStringOutput(t *testing.T) {
	tests := []struct {
		name string
		m    interface{ String() string }
		want string
	}{
		{"ints", MustNew(t, [][]int{{1, 2}, {3, 4}}), "1 2\n3 4\n"},
		{"floats", MustNew(t, [][]float64{{0.5, -1}, {2.25, 0}}), "0.5 -1\n2.25 0\n"},
		{"single", MustNew(t, [][]float64{{5}}), "5\n"},
		{"column", MustNew(t, [][]int{{1}, {2}}), "1\n2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.m.String())
		})
	}
}
