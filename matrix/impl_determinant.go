// SPDX-License-Identifier: MIT

// Package matrix - closed-form determinants for n ≤ 3.
package matrix

import "fmt"

// Det2 returns ad − bc for [[a, b], [c, d]].
func Det2(a, b, c, d float64) float64 { return a*d - b*c }

// Det returns the determinant of the 2×2 matrix.
func (m Mat2) Det() float64 { return Det2(m[0][0], m[0][1], m[1][0], m[1][1]) }

// Det3Flat returns the determinant of a row-major 3×3 matrix
// [a, b, c, d, e, f, g, h, i] by cofactor expansion along the first row:
//
//	det = a(ei − fh) − b(di − fg) + c(dh − eg)
//
// Always defined for finite input; no error conditions.
func Det3Flat(m [9]float64) float64 {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Det3 is Det3Flat for the nested form.
func Det3(m Mat3) float64 { return Det3Flat(m.Flat()) }

// Det returns the determinant of m.
func (m Mat3) Det() float64 { return Det3(m) }

// Det computes the determinant of a square Matrix with 1 ≤ n ≤ 3.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrUnsupportedSize (n > 3).
//
// Complexity: O(1) for the supported sizes.
func Det(m Matrix) (float64, error) {
	if err := ValidateSmallSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	switch d.r {
	case 1:
		return d.data[0], nil
	case 2:
		return d.toMat2().Det(), nil
	default:
		return d.toMat3().Det(), nil
	}
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read via At.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDenseWith(m.Rows(), m.Cols(), WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
