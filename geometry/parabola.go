// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"github.com/katalvlaran/matgeo/internal/numeric"
	"github.com/katalvlaran/matgeo/matrix"
)

const (
	opParabolaTangent = "ParabolaTangentIntersection"
	opLatusRectum     = "LatusRectumTangentIntersection"
	opIntersect       = "Line.Intersect"
)

// Line is the set of points with A·x + B·y + C = 0.
type Line struct {
	A, B, C float64
}

// Intersect returns the single point shared by l and m, by Cramer's rule on
//
//	[A₁ B₁] [x]   [−C₁]
//	[A₂ B₂] [y] = [−C₂]
//
// Errors:
//   - ErrNonFinite when a coefficient is NaN or ±Inf.
//   - ErrParallelLines when the coefficient determinant is below
//     matrix.SingularTol in magnitude.
func (l Line) Intersect(m Line) (Point, error) {
	if !l.finite() || !m.finite() {
		return Point{}, geometryErrorf(opIntersect, ErrNonFinite)
	}
	det := matrix.Det2(l.A, l.B, m.A, m.B)
	if math.Abs(det) < matrix.SingularTol {
		return Point{}, geometryErrorf(opIntersect, ErrParallelLines)
	}

	return Point{
		X: matrix.Det2(-l.C, l.B, -m.C, m.B) / det,
		Y: matrix.Det2(l.A, -l.C, m.A, -m.C) / det,
	}, nil
}

func (l Line) finite() bool {
	return numeric.IsFinite(l.A) && numeric.IsFinite(l.B) && numeric.IsFinite(l.C)
}

// Contains reports whether p satisfies the line equation within tol.
func (l Line) Contains(p Point, tol float64) bool {
	return numeric.NearlyEqual(l.A*p.X+l.B*p.Y+l.C, 0, tol)
}

// ParabolaPoint returns the point (a·t², 2a·t) of y² = 4ax at parameter t.
func ParabolaPoint(a, t float64) Point {
	return Point{X: a * t * t, Y: 2 * a * t}
}

// ParabolaTangentLine returns the tangent to y² = 4ax at parameter t:
// t·y = x + a·t², i.e. x − t·y + a·t² = 0.
func ParabolaTangentLine(a, t float64) Line {
	return Line{A: 1, B: -t, C: a * t * t}
}

// ParabolaTangentIntersection returns the point where the tangents to
// y² = 4ax at parameters t1 and t2 meet: (a·t1·t2, a·(t1 + t2)).
//
// Errors:
//   - ErrNonFinite when a, t1 or t2 is NaN or ±Inf.
//   - ErrParallelTangents when t1 == t2 (the same tangent twice).
func ParabolaTangentIntersection(a, t1, t2 float64) (Point, error) {
	if !numeric.IsFinite(a) || !numeric.IsFinite(t1) || !numeric.IsFinite(t2) {
		return Point{}, geometryErrorf(opParabolaTangent, ErrNonFinite)
	}
	if t1 == t2 {
		return Point{}, geometryErrorf(opParabolaTangent, ErrParallelTangents)
	}

	return Point{X: a * t1 * t2, Y: a * (t1 + t2)}, nil
}

// LatusRectumTangentIntersection returns the meeting point of the tangents to
// y² = 4ax at the ends (a, ±2a) of its latus rectum. Those ends sit at
// parameters t = ±1, so the tangents y = x + a and y = −x − a meet at (−a, 0),
// on the directrix.
//
// Errors:
//   - ErrNonFinite when a is NaN or ±Inf.
func LatusRectumTangentIntersection(a float64) (Point, error) {
	if !numeric.IsFinite(a) {
		return Point{}, geometryErrorf(opLatusRectum, ErrNonFinite)
	}

	return Point{X: -a, Y: 0}, nil
}
