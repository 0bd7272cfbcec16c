// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"github.com/katalvlaran/matgeo/matrix"
)

// orientation returns det [[x₁ y₁ 1] [x₂ y₂ 1] [x₃ y₃ 1]], twice the signed
// area of the triangle p, q, r (positive when counter-clockwise).
func orientation(p, q, r Point) float64 {
	return matrix.Det3(matrix.Mat3{
		{p.X, p.Y, 1},
		{q.X, q.Y, 1},
		{r.X, r.Y, 1},
	})
}

// Collinear reports whether p, q and r lie on one line, i.e. whether the
// orientation determinant is within eps of zero. eps defaults to
// matrix.DefaultEpsilon and is set with matrix.WithEpsilon. Points with a
// NaN or infinite coordinate are never collinear.
func Collinear(p, q, r Point, opts ...matrix.Option) bool {
	if !p.finite() || !q.finite() || !r.finite() {
		return false
	}
	eps := matrix.NewMatrixOptions(opts...).Epsilon()

	return math.Abs(orientation(p, q, r)) <= eps
}

// TriangleArea returns the (unsigned) area of the triangle p, q, r.
func TriangleArea(p, q, r Point) float64 {
	return math.Abs(orientation(p, q, r)) / 2
}
