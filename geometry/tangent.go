// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"github.com/katalvlaran/matgeo/internal/numeric"
)

const (
	opTangentPoints = "TangentPoints"
)

// TangentLength returns the length of the tangent segment from a point at
// distance d from the centre of a circle of radius r: √(d² − r²).
//
// A point on or inside the circle (d ≤ r) has no tangent segment and yields 0;
// this is a degenerate result, not an error.
//
// Complexity: O(1).
func TangentLength(r, d float64) float64 {
	if d <= r {
		return 0
	}

	return math.Sqrt(numeric.Sqr(d) - numeric.Sqr(r))
}

// TangentPoints returns the two points where the tangents from external touch
// the circle of the given radius around center.
//
// Implementation:
//   - Stage 1: u = (external − center)/d, the unit direction from C to P.
//   - Stage 2: in the right triangle C-T-P (right angle at T) the angle at C
//     is α = acos(r/d).
//   - Stage 3: T₁,₂ = C + r·rot(±α)·u. T₁ is reached by the counter-clockwise turn.
//
// Errors:
//   - ErrNonFinite for NaN/Inf coordinates or radius.
//   - ErrNegativeRadius when radius < 0.
//   - ErrInsideCircle when |CP| ≤ radius.
func TangentPoints(center Point, radius float64, external Point) (t1, t2 Point, err error) {
	if !center.finite() || !external.finite() || !numeric.IsFinite(radius) {
		return Point{}, Point{}, geometryErrorf(opTangentPoints, ErrNonFinite)
	}
	if radius < 0 {
		return Point{}, Point{}, geometryErrorf(opTangentPoints, ErrNegativeRadius)
	}
	cp := external.Sub(center)
	d := cp.Norm()
	if d <= radius {
		return Point{}, Point{}, geometryErrorf(opTangentPoints, ErrInsideCircle)
	}

	u := cp.Scale(1 / d)
	alpha := math.Acos(radius / d)
	t1 = center.Add(u.Rotate(alpha).Scale(radius))
	t2 = center.Add(u.Rotate(-alpha).Scale(radius))

	return t1, t2, nil
}
