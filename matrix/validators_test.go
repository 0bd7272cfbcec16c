// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matgeo/matrix"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil((*matrix.Dense)(nil)), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateShapes(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)

	assert.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateSquare(a), matrix.ErrNonSquare)
	assert.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)
	assert.NoError(t, matrix.ValidateMulCompatible(a, b))
	assert.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestValidateSmallSquare(t *testing.T) {
	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"rectangular", MustDense(t, 2, 3), matrix.ErrNonSquare},
		{"4x4", MustDense(t, 4, 4), matrix.ErrUnsupportedSize},
		{"1x1", MustDense(t, 1, 1), nil},
		{"3x3", MustDense(t, 3, 3), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSmallSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateFinite(t *testing.T) {
	m, err := matrix.NewDenseWith(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateFinite(m))

	require.NoError(t, m.Set(1, 0, math.NaN()))
	err = matrix.ValidateFinite(hide{m})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "ValidateFinite(1,0)")
}
