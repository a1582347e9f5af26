// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and a dense reference (gonum/mat)
//     for checking sparse results cell by cell.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// cell is a (row, col) coordinate used as a map key in expectations.
type cell [2]int

// MustNew allocates an empty r×c matrix or fails the test.
func MustNew(t testing.TB, r, c int) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(r, c)
	require.NoError(t, err)

	return m
}

// FromCells builds an r×c matrix from a coordinate → value map.
func FromCells(t testing.TB, r, c int, cells map[cell]int64) *sparse.Matrix {
	t.Helper()
	m := MustNew(t, r, c)
	for k, v := range cells {
		require.NoError(t, m.Set(k[0], k[1], v))
	}

	return m
}

// Cells flattens m into a coordinate → value map (nil-safe for comparisons
// with an empty expectation).
func Cells(m *sparse.Matrix) map[cell]int64 {
	out := make(map[cell]int64, m.NNZ())
	for e := range m.All() {
		out[cell{e.Row, e.Col}] = e.Value
	}

	return out
}

// RandomMatrix fills an r×c matrix with about density*r*c values drawn from
// [-9, 9]; zeros drawn are simply not stored.
func RandomMatrix(t testing.TB, rng *rand.Rand, r, c int, density float64) *sparse.Matrix {
	t.Helper()
	m := MustNew(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Float64() < density {
				require.NoError(t, m.Set(i, j, int64(rng.Intn(19)-9)))
			}
		}
	}

	return m
}

// ToDense materialises m as a gonum dense matrix (reference implementation).
// gonum rejects zero-sized shapes, so callers must use r,c >= 1.
func ToDense(m *sparse.Matrix) *mat.Dense {
	d := mat.NewDense(m.Rows(), m.Cols(), nil)
	for e := range m.All() {
		d.Set(e.Row, e.Col, float64(e.Value))
	}

	return d
}

// RequireMatchesDense asserts m equals d cell by cell.
func RequireMatchesDense(t testing.TB, d mat.Matrix, m *sparse.Matrix) {
	t.Helper()
	r, c := d.Dims()
	require.Equal(t, r, m.Rows(), "rows")
	require.Equal(t, c, m.Cols(), "cols")
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, d.At(i, j), float64(got), "cell (%d,%d)", i, j)
		}
	}
}

// RequireNoZeros asserts that iteration never yields a zero.
func RequireNoZeros(t testing.TB, m *sparse.Matrix) {
	t.Helper()
	n := 0
	for e := range m.All() {
		require.NotZero(t, e.Value, "zero stored at (%d,%d)", e.Row, e.Col)
		require.GreaterOrEqual(t, e.Row, 0)
		require.Less(t, e.Row, m.Rows())
		require.GreaterOrEqual(t, e.Col, 0)
		require.Less(t, e.Col, m.Cols())
		n++
	}
	require.Equal(t, m.NNZ(), n)
}
