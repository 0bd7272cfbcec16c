// Package statics balances the forces on a weight W hanging from a string
// that a horizontal force F holds at angle θ from the vertical.
//
// Resolving the string tension T into components gives
//
//	T·sin θ = F      (horizontal)
//	T·cos θ = W      (vertical)
//
// so F = W·tan θ and T = W / cos θ. HorizontalForce and StringTension use the
// closed forms; Equilibrium solves the 2×2 system with matrix.Inverse2 and
// DeflectionAngle inverts the relation for θ.
//
// Angles are in degrees and must lie in [0°, 90°). Weights must be
// non-negative.
package statics
