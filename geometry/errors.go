// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeRadius is returned when a circle radius is below zero.
	ErrNegativeRadius = errors.New("geometry: radius must be non-negative")

	// ErrInsideCircle is returned when tangent points are requested for a
	// point on or inside the circle (no real tangents exist).
	ErrInsideCircle = errors.New("geometry: point is not outside the circle")

	// ErrParallelTangents is returned when two tangents to a parabola are
	// taken at the same parameter and never meet.
	ErrParallelTangents = errors.New("geometry: tangents are parallel")

	// ErrNonPositiveParameter is returned for a parabola parameter ≤ 0.
	ErrNonPositiveParameter = errors.New("geometry: parabola parameter must be > 0")

	// ErrBadInterval is returned for an empty integration interval or node count.
	ErrBadInterval = errors.New("geometry: invalid integration interval")

	// ErrParallelLines is returned when two lines have no single intersection.
	ErrParallelLines = errors.New("geometry: lines are parallel or coincident")

	// ErrNilFunction is returned when an integrand is nil.
	ErrNilFunction = errors.New("geometry: nil function")

	// ErrNonFinite is returned when an input is NaN or ±Inf.
	ErrNonFinite = errors.New("geometry: NaN or Inf input")
)

// geometryErrorf wraps err with an operation tag, preserving it for errors.Is.
func geometryErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
