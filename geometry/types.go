// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matgeo/internal/numeric"
)

// Point is a location (or displacement) in the plane.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p − q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns s·p.
func (p Point) Scale(s float64) Point { return Point{s * p.X, s * p.Y} }

// Dot returns the scalar product of p and q taken as vectors.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Norm returns |p|.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns |p − q|.
func (p Point) Dist(q Point) float64 { return p.Sub(q).Norm() }

// Rotate returns p rotated counter-clockwise by theta radians about the origin.
func (p Point) Rotate(theta float64) Point {
	s, c := math.Sincos(theta)

	return Point{c*p.X - s*p.Y, s*p.X + c*p.Y}
}

// String formats p as "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

func (p Point) finite() bool {
	return numeric.IsFinite(p.X) && numeric.IsFinite(p.Y)
}
