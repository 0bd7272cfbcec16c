// SPDX-License-Identifier: MIT

// Package matrix - closed-form inverses (adjugate over determinant) for n ≤ 3.
//
// Policy:
//   - |det| < SingularTol ⇒ ErrSingular. The tolerance is fixed.
//   - On failure the returned value is the zero value and must not be read.
package matrix

import "math"

// Inverse2 returns the inverse of a 2×2 matrix: [[d, −b], [−c, a]] / det.
func Inverse2(m Mat2) (Mat2, error) {
	det := m.Det()
	if math.Abs(det) < SingularTol {
		return Mat2{}, matrixErrorf(opInverse, ErrSingular)
	}
	inv := 1.0 / det

	return Mat2{
		{m[1][1] * inv, -m[0][1] * inv},
		{-m[1][0] * inv, m[0][0] * inv},
	}, nil
}

// Inverse returns the inverse of the 2×2 matrix; see Inverse2.
func (m Mat2) Inverse() (Mat2, error) { return Inverse2(m) }

// Inverse3 returns the inverse of a 3×3 matrix as the transposed cofactor
// matrix divided by the determinant.
//
// Errors:
//   - ErrSingular when |det| < SingularTol (1e-9).
//
// Complexity: O(1).
func Inverse3(m Mat3) (Mat3, error) {
	det := m.Det()
	if math.Abs(det) < SingularTol {
		return Mat3{}, matrixErrorf(opInverse, ErrSingular)
	}
	inv := 1.0 / det

	// Row i of the result is column i of the cofactor matrix.
	return Mat3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * inv,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * inv,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * inv,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv,
		},
	}, nil
}

// Inverse returns the inverse of the 3×3 matrix; see Inverse3.
func (m Mat3) Inverse() (Mat3, error) { return Inverse3(m) }

// Inverse computes A⁻¹ for a square Matrix with 1 ≤ n ≤ 3 and returns a fresh
// Dense. The input is never mutated and never aliases the result.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrUnsupportedSize (n > 3).
//   - ErrSingular when |det| < SingularTol.
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSmallSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	switch d.r {
	case 1:
		if math.Abs(d.data[0]) < SingularTol {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		out, _ := NewDense(1, 1)
		out.data[0] = 1.0 / d.data[0]

		return out, nil
	case 2:
		inv, err := Inverse2(d.toMat2())
		if err != nil {
			return nil, err
		}

		return inv.Dense(), nil
	default:
		inv, err := Inverse3(d.toMat3())
		if err != nil {
			return nil, err
		}

		return inv.Dense(), nil
	}
}
