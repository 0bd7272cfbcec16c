// SPDX-License-Identifier: MIT

// Package numeric holds small generic scalar helpers shared by the kernels:
// absolute value, squaring, clamping, tolerance comparison and overflow-checked
// int64 arithmetic for fraction-free elimination.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Abs returns |x|. For the most negative signed integer the result wraps,
// as with the builtin negation.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Sqr returns v*v.
func Sqr[T Number](v T) T { return v * v }

// Clamp limits x to [lo, hi]. Bounds are swapped when lo > hi.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// NearlyEqual reports |a-b| ≤ tol. NaN is never equal to anything.
func NearlyEqual[T constraints.Float](a, b, tol T) bool {
	return Abs(a-b) <= Abs(tol)
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad[T constraints.Float](deg T) T {
	return deg * T(math.Pi) / 180
}

// MulInt64 returns a*b and false when the product overflows int64.
func MulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	// The sign test also catches MinInt64 * -1, where c/b wraps back to a.
	if (c < 0) != ((a < 0) != (b < 0)) || c/b != a {
		return 0, false
	}

	return c, true
}

// SubInt64 returns a-b and false when the difference overflows int64.
func SubInt64(a, b int64) (int64, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, false
	}

	return c, true
}
