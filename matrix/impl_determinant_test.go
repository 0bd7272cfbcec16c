// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matgeo/matrix"
)

func TestDet3_Known(t *testing.T) {
	tests := []struct {
		name string
		m    matrix.Mat3
		want float64
	}{
		{"identity", matrix.Identity3(), 1},
		{"diag", matrix.Diag3(2, 3, 4), 24},
		{"eigenbasis", matrix.Mat3{{1, 0, -1}, {2, 1, 1}, {1, 1, 0}}, -2},
		{"dependent rows", matrix.Mat3{{2, 1, 1}, {0, 1, -1}, {1, 1, 0}}, 0},
		{"zero row", matrix.Mat3{{1, 2, 3}, {0, 0, 0}, {4, 5, 6}}, 0},
		{"upper triangular", matrix.Mat3{{3, 7, -1}, {0, 2, 5}, {0, 0, -1}}, -6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, matrix.Det3(tc.m))
			assert.Equal(t, tc.want, tc.m.Det())
			assert.Equal(t, tc.want, matrix.Det3Flat(tc.m.Flat()))
		})
	}
}

func TestDet2(t *testing.T) {
	assert.Equal(t, 6.0, matrix.Det2(5, -2, -2, 2))
	assert.Equal(t, -2.0, matrix.Mat2{{1, 2}, {3, 4}}.Det())
}

// TestDet3_TransposeInvariant checks det(M) = det(Mᵀ) on random input.
func TestDet3_TransposeInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for k := 0; k < 200; k++ {
		m := randomMat3(rng)
		require.InDelta(t, matrix.Det3(m), matrix.Det3(m.Transpose()), tol)
	}
}

// TestDet3_AgreesWithGonum cross-checks the cofactor expansion against LU.
func TestDet3_AgreesWithGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for k := 0; k < 200; k++ {
		m := randomMat3(rng)
		require.InDelta(t, mat.Det(toGonum(m)), matrix.Det3(m), tol)
	}
}

// TestDet3_Multiplicative checks det(AB) = det(A)·det(B).
func TestDet3_Multiplicative(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for k := 0; k < 50; k++ {
		a, b := randomMat3(rng), randomMat3(rng)
		require.InDelta(t, matrix.Det3(a)*matrix.Det3(b), matrix.Det3(a.Mul(b)), 1e-7)
	}
}

func TestDet_Dense(t *testing.T) {
	d1 := MustFrom(t, [][]float64{{-3.5}})
	d2 := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	d3 := matrix.Mat3{{1, 0, -1}, {2, 1, 1}, {1, 1, 0}}.Dense()

	for _, tc := range []struct {
		name string
		m    matrix.Matrix
		want float64
	}{
		{"1x1", d1, -3.5},
		{"2x2", d2, -2},
		{"3x3", d3, -2},
		{"3x3 via interface", hide{d3}, -2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Det(tc.m)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			alias, err := matrix.Determinant(tc.m)
			require.NoError(t, err)
			assert.Equal(t, got, alias)
		})
	}
}

func TestDet_Errors(t *testing.T) {
	_, err := matrix.Det(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	// a nil *Dense inside the interface is rejected, not dereferenced
	var none *matrix.Dense
	_, err = matrix.Det(none)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Inverse(none)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Det(MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Det(MustDense(t, 4, 4))
	assert.ErrorIs(t, err, matrix.ErrUnsupportedSize)
}
