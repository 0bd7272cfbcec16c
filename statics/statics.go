// SPDX-License-Identifier: MIT

package statics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matgeo/internal/numeric"
	"github.com/katalvlaran/matgeo/matrix"
)

// Balance holds the two unknown forces of the hanging-weight problem.
type Balance struct {
	Horizontal float64 // F, newtons
	Tension    float64 // T, newtons
}

// validate checks the shared preconditions and returns θ in radians.
func validate(op string, weight, angleDeg float64) (float64, error) {
	if !numeric.IsFinite(weight) || !numeric.IsFinite(angleDeg) {
		return 0, fmt.Errorf("%s: %w", op, ErrNonFinite)
	}
	if weight < 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrNegativeWeight)
	}
	if angleDeg < 0 || angleDeg >= 90 {
		return 0, fmt.Errorf("%s(%g°): %w", op, angleDeg, ErrAngleOutOfRange)
	}

	return numeric.Deg2Rad(angleDeg), nil
}

// HorizontalForce returns F = W·tan θ, the horizontal force that holds a
// weight W on a string at angleDeg degrees from the vertical.
func HorizontalForce(weight, angleDeg float64) (float64, error) {
	theta, err := validate("HorizontalForce", weight, angleDeg)
	if err != nil {
		return 0, err
	}

	return weight * math.Tan(theta), nil
}

// StringTension returns T = W / cos θ.
func StringTension(weight, angleDeg float64) (float64, error) {
	theta, err := validate("StringTension", weight, angleDeg)
	if err != nil {
		return 0, err
	}

	return weight / math.Cos(theta), nil
}

// Equilibrium solves the component equations
//
//	[sin θ  −1] [T]   [0]
//	[cos θ   0] [F] = [W]
//
// for tension and horizontal force. The system determinant is cos θ; when it
// falls below matrix.SingularTol (θ within ~6e-8° of 90°) the error wraps
// matrix.ErrSingular.
func Equilibrium(weight, angleDeg float64) (Balance, error) {
	theta, err := validate("Equilibrium", weight, angleDeg)
	if err != nil {
		return Balance{}, err
	}
	s, c := math.Sincos(theta)
	inv, err := matrix.Mat2{{s, -1}, {c, 0}}.Inverse()
	if err != nil {
		return Balance{}, fmt.Errorf("Equilibrium: %w", err)
	}
	t, f := inv.MulVec(0, weight)

	return Balance{Horizontal: f, Tension: t}, nil
}

// DeflectionAngle returns θ in degrees for a weight held by a horizontal
// force: θ = atan(F / W). A negative force, or a positive force on a zero
// weight, has no angle in [0°, 90°) and yields ErrAngleOutOfRange.
func DeflectionAngle(weight, force float64) (float64, error) {
	if !numeric.IsFinite(weight) || !numeric.IsFinite(force) {
		return 0, fmt.Errorf("DeflectionAngle: %w", ErrNonFinite)
	}
	if weight < 0 {
		return 0, fmt.Errorf("DeflectionAngle: %w", ErrNegativeWeight)
	}
	if force < 0 || (weight == 0 && force > 0) {
		return 0, fmt.Errorf("DeflectionAngle: %w", ErrAngleOutOfRange)
	}
	if force == 0 {
		return 0, nil
	}

	return math.Atan(force/weight) * 180 / math.Pi, nil
}
