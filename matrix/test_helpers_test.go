// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Kernels see a non-*Dense operand and take the At() fallback path.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide[T matrix.Number] struct{ matrix.Matrix[T] }

// MustNew builds a *Dense from a literal grid or fails the test.
func MustNew[T matrix.Number](t testing.TB, grid [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.New(grid)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n as float64 or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.Identity[float64](n)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Number](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandGrid BUILDS an r×c grid of small pseudo-random integers stored as float64.
// Small integers keep sums and products exact, so fast-path and fallback
// results can be compared with ==.
func RandGrid(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	g := make([][]float64, r)
	for i := range g {
		g[i] = make([]float64, c)
		for j := range g[i] {
			g[i][j] = float64(rng.Intn(19) - 9)
		}
	}

	return g
}

// RandDense is RandGrid wrapped into a *Dense.
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()

	return MustNew(t, RandGrid(r, c, seed))
}

// RequireClose ASSERTS AllClose(got, want, rtol, atol) holds.
func RequireClose(t testing.TB, want, got matrix.Matrix[float64], rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond tolerance:\nwant\n%v\ngot\n%v", want, got)
}
