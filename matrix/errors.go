// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an operation
// tag) and tests check them via errors.Is. No kernel panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so failures are easy to grep.
// Wrap with matrixErrorf(op, ErrX) at the detection site; callers still match
// with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/size -> NaN/Inf -> numeric failure (singular, complex, overflow).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when nested input rows are ragged or empty.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add with different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrUnsupportedSize signals a square matrix larger than the closed-form
	// kernels handle (determinant and inverse are defined for n ≤ 3).
	ErrUnsupportedSize = errors.New("matrix: size not supported by closed-form kernel")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when |det| < SingularTol during inversion.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrComplexEigenvalues is returned by the 2×2 eigen solver when the
	// characteristic discriminant is negative. No real outputs are produced.
	ErrComplexEigenvalues = errors.New("matrix: complex eigenvalues")

	// ErrOverflow is returned when fraction-free elimination would exceed int64.
	ErrOverflow = errors.New("matrix: integer overflow during elimination")

	// ErrNonIntegral is returned when an integer-only routine receives a
	// float entry with a fractional part.
	ErrNonIntegral = errors.New("matrix: non-integral entry")
)
