// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// ---------- Add / Sub / Negate ----------

func TestAdd_Succeeds(t *testing.T) {
	a := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustNew(t, [][]float64{{6, 5, 4}, {3, 2, 1}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{7, 7, 7}, {7, 7, 7}}, sum.Grid())

	// operands untouched
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, a.Grid())
	require.Equal(t, [][]float64{{6, 5, 4}, {3, 2, 1}}, b.Grid())
}

func TestAdd_DimensionMismatch(t *testing.T) {
	a := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := MustNew(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	c := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAdd_NilOperand(t *testing.T) {
	a := MustNew(t, [][]float64{{1}})
	var nilDense *matrix.Dense[float64]

	_, err := matrix.Add[float64](a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Add[float64](nilDense, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAdd_Commutative(t *testing.T) {
	a := RandDense(t, 4, 5, 11)
	b := RandDense(t, 4, 5, 22)

	ab, err := matrix.Add(a, b)
	require.NoError(t, err)
	ba, err := matrix.Add(b, a)
	require.NoError(t, err)
	require.True(t, ab.Equal(ba))
}

func TestAdd_NegateIsZero(t *testing.T) {
	a := RandDense(t, 3, 4, 7)

	neg, err := matrix.Negate(a)
	require.NoError(t, err)
	sum, err := matrix.Add(a, neg)
	require.NoError(t, err)
	zero, err := matrix.Zeros[float64](3, 4)
	require.NoError(t, err)
	require.True(t, sum.Equal(zero))
}

func TestSub_Succeeds(t *testing.T) {
	a := MustNew(t, [][]int{{5, 4}, {3, 2}, {1, 0}})
	b := MustNew(t, [][]int{{1, 1}, {1, 1}, {1, 1}})

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{4, 3}, {2, 1}, {0, -1}}, diff.Grid())
}

// TestSub_MatchesAddNegate checks a - b == a + (-b).
func TestSub_MatchesAddNegate(t *testing.T) {
	a := RandDense(t, 5, 3, 3)
	b := RandDense(t, 5, 3, 4)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	nb, err := matrix.Negate(b)
	require.NoError(t, err)
	alt, err := matrix.Add(a, nb)
	require.NoError(t, err)
	require.True(t, diff.Equal(alt))
}

func TestNegate(t *testing.T) {
	a := MustNew(t, [][]int{{1, -2}, {0, 4}})

	n, err := matrix.Negate(a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{-1, 2}, {0, -4}}, n.Grid())

	_, err = matrix.Negate[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestElementwise_FallbackMatchesFastPath runs every element-wise kernel with
// hidden operands and compares against the *Dense fast path.
func TestElementwise_FallbackMatchesFastPath(t *testing.T) {
	t.Parallel()

	a := RandDense(t, 4, 5, 101)
	b := RandDense(t, 4, 5, 202)
	ha, hb := hide[float64]{a}, hide[float64]{b}

	fast, err := matrix.Add(a, b)
	require.NoError(t, err)
	slow, err := matrix.Add[float64](ha, hb)
	require.NoError(t, err)
	require.True(t, fast.Equal(slow), "Add")

	fast, err = matrix.Sub(a, b)
	require.NoError(t, err)
	slow, err = matrix.Sub[float64](ha, b)
	require.NoError(t, err)
	require.True(t, fast.Equal(slow), "Sub")

	fast, err = matrix.Negate(a)
	require.NoError(t, err)
	slow, err = matrix.Negate[float64](ha)
	require.NoError(t, err)
	require.True(t, fast.Equal(slow), "Negate")

	fast, err = matrix.Scale(3.0, a)
	require.NoError(t, err)
	slow, err = matrix.Scale[float64](3, ha)
	require.NoError(t, err)
	require.True(t, fast.Equal(slow), "Scale")
}

// ---------- Scale ----------

func TestScale_Elementwise(t *testing.T) {
	a := RandDense(t, 3, 3, 5)
	const k = -2.5

	s, err := matrix.Scale(k, a)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			require.Equal(t, k*MustAt[float64](t, a, i, j), MustAt[float64](t, s, i, j))
		}
	}
}

func TestScale_Identity(t *testing.T) {
	a := RandDense(t, 2, 6, 9)

	s, err := matrix.Scale(1.0, a)
	require.NoError(t, err)
	require.True(t, s.Equal(a))
}

// TestScale_EitherOrder checks k·A == A·k.
func TestScale_EitherOrder(t *testing.T) {
	a := MustNew(t, [][]int{{1, 0}, {0, 1}})

	left, err := matrix.Scale(2, a)
	require.NoError(t, err)
	right, err := matrix.ScaleBy(a, 2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{2, 0}, {0, 2}}, left.Grid())
	require.True(t, left.Equal(right))
}

func TestScale_Zero(t *testing.T) {
	a := RandDense(t, 2, 2, 1)

	s, err := matrix.ScaleBy(a, 0)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0}, {0, 0}}, s.Grid())
}

// ---------- Transpose ----------

func TestTranspose(t *testing.T) {
	a := MustNew(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, at.Grid())
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 2, at.Cols())

	slow, err := matrix.Transpose[int](hide[int]{a})
	require.NoError(t, err)
	require.True(t, at.Equal(slow))
}

func TestTranspose_Involution(t *testing.T) {
	for _, rc := range [][2]int{{1, 1}, {1, 7}, {7, 1}, {4, 3}, {5, 5}} {
		t.Run(fmt.Sprintf("%dx%d", rc[0], rc[1]), func(t *testing.T) {
			a := RandDense(t, rc[0], rc[1], int64(rc[0]*10+rc[1]))
			at, err := matrix.Transpose(a)
			require.NoError(t, err)
			att, err := matrix.Transpose(at)
			require.NoError(t, err)
			require.True(t, att.Equal(a))
		})
	}
}

func TestTranspose_Nil(t *testing.T) {
	_, err := matrix.Transpose[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Dot ----------

func TestDot(t *testing.T) {
	v, err := matrix.Dot([]int{1, 2, 3}, []int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 14, v)

	f, err := matrix.Dot([]float64{0.5, -1}, []float64{4, 2})
	require.NoError(t, err)
	require.Equal(t, 0.0, f)

	e, err := matrix.Dot([]int{}, []int{})
	require.NoError(t, err)
	require.Equal(t, 0, e)

	_, err = matrix.Dot([]int{1, 2}, []int{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// ---------- Mul ----------

func TestMul_KnownProduct(t *testing.T) {
	a := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := MustNew(t, [][]float64{{5, 6}, {7, 8}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, c.Grid())
}

func TestMul_Shapes(t *testing.T) {
	tests := []struct {
		ar, ac, br, bc int
		wantErr        bool
	}{
		{2, 3, 3, 4, false},
		{1, 5, 5, 1, false},
		{5, 1, 1, 5, false},
		{2, 3, 2, 3, true},
		{3, 3, 2, 3, true},
	}
	for _, tc := range tests {
		name := fmt.Sprintf("%dx%d*%dx%d", tc.ar, tc.ac, tc.br, tc.bc)
		t.Run(name, func(t *testing.T) {
			a := RandDense(t, tc.ar, tc.ac, 1)
			b := RandDense(t, tc.br, tc.bc, 2)
			c, err := matrix.Mul(a, b)
			if tc.wantErr {
				require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.ar, c.Rows())
			require.Equal(t, tc.bc, c.Cols())
		})
	}
}

// TestMul_MatchesDefinition checks C[i,j] == Dot(row i of A, col j of B).
func TestMul_MatchesDefinition(t *testing.T) {
	a := RandDense(t, 4, 6, 31)
	b := RandDense(t, 6, 3, 32)

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)

	var i, j int
	for i = 0; i < 4; i++ {
		row, err := a.Row(i)
		require.NoError(t, err)
		for j = 0; j < 3; j++ {
			col, err := b.Col(j)
			require.NoError(t, err)
			want, err := matrix.Dot(row, col)
			require.NoError(t, err)
			require.Equal(t, want, MustAt[float64](t, c, i, j), "C[%d,%d]", i, j)
		}
	}
}

func TestMul_IdentityIsNeutral(t *testing.T) {
	a := RandDense(t, 3, 5, 77)

	left, err := matrix.Mul(MustIdentity(t, 3), a)
	require.NoError(t, err)
	require.True(t, left.Equal(a))

	right, err := matrix.Mul(a, MustIdentity(t, 5))
	require.NoError(t, err)
	require.True(t, right.Equal(a))
}

func TestMul_FallbackMatchesFastPath(t *testing.T) {
	a := RandDense(t, 5, 4, 41)
	b := RandDense(t, 4, 6, 42)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slowA, err := matrix.Mul[float64](hide[float64]{a}, b)
	require.NoError(t, err)
	slowB, err := matrix.Mul[float64](a, hide[float64]{b})
	require.NoError(t, err)

	require.True(t, fast.Equal(slowA))
	require.True(t, fast.Equal(slowB))
}

func TestMul_DoesNotMutate(t *testing.T) {
	a := MustNew(t, [][]int{{1, 2}, {3, 4}})
	b := MustNew(t, [][]int{{0, 1}, {1, 0}})

	_, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, a.Grid())
	require.Equal(t, [][]int{{0, 1}, {1, 0}}, b.Grid())
}
