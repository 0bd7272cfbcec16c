// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for the kernels.
//   - Bridge to gonum/mat, used as an independent reference implementation.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matgeo/matrix"
)

// tol is the absolute tolerance used for floating-point comparisons.
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type, forcing the
// interface (non-*Dense) path in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFrom builds a *Dense from nested rows or fails the test.
func MustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustIntFrom builds an *IntDense from nested rows or fails the test.
func MustIntFrom(t *testing.T, rows [][]int64) *matrix.IntDense {
	t.Helper()
	m, err := matrix.NewIntDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireMat3Close asserts element-wise |got-want| ≤ delta.
func requireMat3Close(t *testing.T, want, got matrix.Mat3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDeltaf(t, want[i][j], got[i][j], delta, "entry [%d,%d]", i, j)
		}
	}
}

// randomMat3 returns a Mat3 with entries uniform in [-5, 5).
func randomMat3(rng *rand.Rand) matrix.Mat3 {
	var m matrix.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = rng.Float64()*10 - 5
		}
	}

	return m
}

// randomIntDense returns an r×c IntDense with entries in [-span, span].
func randomIntDense(t *testing.T, rng *rand.Rand, r, c int, span int64) *matrix.IntDense {
	t.Helper()
	m, err := matrix.NewIntDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Int63n(2*span+1)-span))
		}
	}

	return m
}

// toGonum copies a Mat3 into a gonum *mat.Dense.
func toGonum(m matrix.Mat3) *mat.Dense {
	f := m.Flat()

	return mat.NewDense(3, 3, append([]float64(nil), f[:]...))
}

// intToGonum copies an IntDense into a gonum *mat.Dense.
func intToGonum(t *testing.T, m *matrix.IntDense) *mat.Dense {
	t.Helper()
	g := mat.NewDense(m.Rows(), m.Cols(), nil)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			g.Set(i, j, float64(v))
		}
	}

	return g
}
