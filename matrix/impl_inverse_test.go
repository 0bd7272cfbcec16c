// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matgeo/matrix"
)

// TestInverse3_Exact checks a matrix whose inverse is representable exactly.
func TestInverse3_Exact(t *testing.T) {
	p := matrix.Mat3{{1, 0, -1}, {2, 1, 1}, {1, 1, 0}}
	want := matrix.Mat3{
		{0.5, 0.5, -0.5},
		{-0.5, -0.5, 1.5},
		{-0.5, 0.5, -0.5},
	}

	got, err := matrix.Inverse3(p)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	viaMethod, err := p.Inverse()
	require.NoError(t, err)
	assert.Equal(t, got, viaMethod)
}

// TestInverse3_RoundTrip checks M·M⁻¹ ≈ I and M⁻¹·M ≈ I on random input.
func TestInverse3_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	checked := 0
	for checked < 200 {
		m := randomMat3(rng)
		if math.Abs(m.Det()) < 1 {
			continue
		}
		inv, err := matrix.Inverse3(m)
		require.NoError(t, err)
		requireMat3Close(t, matrix.Identity3(), m.Mul(inv), tol)
		requireMat3Close(t, matrix.Identity3(), inv.Mul(m), tol)
		checked++
	}
}

// TestInverse3_AgreesWithGonum cross-checks the adjugate form against LU inversion.
func TestInverse3_AgreesWithGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	checked := 0
	for checked < 100 {
		m := randomMat3(rng)
		if math.Abs(m.Det()) < 1 {
			continue
		}
		got, err := matrix.Inverse3(m)
		require.NoError(t, err)

		var ref mat.Dense
		require.NoError(t, ref.Inverse(toGonum(m)))
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				require.InDelta(t, ref.At(i, j), got[i][j], tol)
			}
		}
		checked++
	}
}

func TestInverse3_Singular(t *testing.T) {
	tests := []struct {
		name string
		m    matrix.Mat3
	}{
		{"zero row", matrix.Mat3{{1, 2, 3}, {0, 0, 0}, {4, 5, 6}}},
		{"dependent rows", matrix.Mat3{{2, 1, 1}, {0, 1, -1}, {1, 1, 0}}},
		{"zero", matrix.Mat3{}},
		{"below threshold", matrix.Diag3(1e-3, 1e-3, 1e-4)}, // det = 1e-10
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Inverse3(tc.m)
			require.ErrorIs(t, err, matrix.ErrSingular)
			assert.Equal(t, matrix.Mat3{}, got)
		})
	}
}

// TestInverse3_AboveThreshold: tiny but above SingularTol still inverts.
func TestInverse3_AboveThreshold(t *testing.T) {
	m := matrix.Diag3(1e-3, 1e-3, 1e-2) // det = 1e-8
	inv, err := matrix.Inverse3(m)
	require.NoError(t, err)
	require.InDelta(t, 1e3, inv[0][0], 1e-6)
	require.InDelta(t, 1e2, inv[2][2], 1e-6)
}

func TestInverse3_Involution(t *testing.T) {
	m := matrix.Mat3{{4, 7, 2}, {3, 6, 1}, {2, 5, 3}}
	inv, err := matrix.Inverse3(m)
	require.NoError(t, err)
	back, err := matrix.Inverse3(inv)
	require.NoError(t, err)
	requireMat3Close(t, m, back, tol)
}

func TestInverse2(t *testing.T) {
	inv, err := matrix.Inverse2(matrix.Mat2{{4, 7}, {2, 6}})
	require.NoError(t, err)
	assert.InDelta(t, 0.6, inv[0][0], tol)
	assert.InDelta(t, -0.7, inv[0][1], tol)
	assert.InDelta(t, -0.2, inv[1][0], tol)
	assert.InDelta(t, 0.4, inv[1][1], tol)

	_, err = matrix.Mat2{{1, 2}, {2, 4}}.Inverse()
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_Dense(t *testing.T) {
	t.Run("1x1", func(t *testing.T) {
		inv, err := matrix.Inverse(MustFrom(t, [][]float64{{4}}))
		require.NoError(t, err)
		assert.Equal(t, 0.25, MustAt(t, inv, 0, 0))

		_, err = matrix.Inverse(MustFrom(t, [][]float64{{0}}))
		assert.ErrorIs(t, err, matrix.ErrSingular)
	})

	t.Run("2x2 via interface", func(t *testing.T) {
		inv, err := matrix.InverseOf(hide{MustFrom(t, [][]float64{{4, 7}, {2, 6}})})
		require.NoError(t, err)
		assert.InDelta(t, 0.4, MustAt(t, inv, 1, 1), tol)
	})

	t.Run("3x3 leaves input untouched", func(t *testing.T) {
		src := matrix.Mat3{{1, 0, -1}, {2, 1, 1}, {1, 1, 0}}
		in := src.Dense()
		before := in.String()

		inv, err := matrix.Inverse(in)
		require.NoError(t, err)
		assert.Equal(t, before, in.String())
		assert.NotSame(t, in, inv)

		prod, err := matrix.Mul(in, inv)
		require.NoError(t, err)
		id, err := matrix.NewIdentity(3)
		require.NoError(t, err)
		ok, err := matrix.AllClose(prod, id, 0, tol)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("singular 3x3", func(t *testing.T) {
		_, err := matrix.Inverse(matrix.Mat3{{1, 2, 3}, {0, 0, 0}, {4, 5, 6}}.Dense())
		assert.ErrorIs(t, err, matrix.ErrSingular)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := matrix.Inverse(MustDense(t, 4, 4))
		assert.ErrorIs(t, err, matrix.ErrUnsupportedSize)
	})
}
