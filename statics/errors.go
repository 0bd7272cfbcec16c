// SPDX-License-Identifier: MIT

package statics

import "errors"

var (
	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("statics: weight must be non-negative")

	// ErrAngleOutOfRange indicates an angle outside [0°, 90°).
	ErrAngleOutOfRange = errors.New("statics: angle must lie in [0, 90) degrees")

	// ErrNonFinite indicates a NaN or ±Inf input.
	ErrNonFinite = errors.New("statics: NaN or Inf input")
)
