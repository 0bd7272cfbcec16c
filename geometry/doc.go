// Package geometry solves small analytic-geometry problems in the plane:
// tangents from an external point to a circle, tangents to the parabola
// y² = 4ax, collinearity of three points and areas enclosed between curves.
//
// What is covered:
//
//   - TangentLength / TangentPoints: the tangent segment from P to a circle
//     of radius r centred at C has length √(d² − r²), d = |CP|.
//   - LatusRectumTangentIntersection / ParabolaTangentIntersection: tangents
//     at parametric points (at², 2at) meet at (a·t₁t₂, a(t₁+t₂)).
//   - Collinear / TriangleArea: the 3×3 determinant with a column of ones,
//     evaluated by matrix.Det3.
//   - EnclosedParabolaArea / AreaBetween: the closed form 16ab/3 for
//     y² = 4ax and x² = 4by, and a Gauss–Legendre integral of upper − lower
//     for arbitrary curves (gonum integrate/quad).
//
// Usage:
//
//	l := geometry.TangentLength(4, 6)                  // 2√5
//	t1, t2, err := geometry.TangentPoints(geometry.Point{}, 4, geometry.Point{X: 6})
//	area, _ := geometry.EnclosedParabolaArea(1, 1)     // 16/3
//
// Every function is pure and safe for concurrent use.
package geometry
