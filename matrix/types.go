// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense kernels.
// Fixed-size value types (Vec3, Mat2, Mat3) live in fixed.go; the flat-buffer
// containers (Dense, IntDense) live in impl_dense.go and impl_int_dense.go.
package matrix

import "github.com/katalvlaran/matgeo/internal/numeric"

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// EigenPair holds the two real eigenvalues of a 2×2 matrix, L1 ≥ L2.
type EigenPair struct {
	L1 float64 // (trace + √disc) / 2
	L2 float64 // (trace − √disc) / 2
}

// Contains reports whether v equals L1 or L2 within tol.
func (p EigenPair) Contains(v, tol float64) bool {
	return numeric.NearlyEqual(p.L1, v, tol) || numeric.NearlyEqual(p.L2, v, tol)
}

// Trace returns L1 + L2 (equal to a + d of the source matrix).
func (p EigenPair) Trace() float64 { return p.L1 + p.L2 }

// Product returns L1 * L2 (equal to ad − bc of the source matrix).
func (p EigenPair) Product() float64 { return p.L1 * p.L2 }
