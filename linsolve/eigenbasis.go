// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/matgeo/matrix"
)

// basisMatrix returns P = [v₁ | v₂ | v₃].
func basisMatrix(vectors [3]matrix.Vec3) matrix.Mat3 {
	return matrix.Mat3FromColumns(vectors[0], vectors[1], vectors[2])
}

// Coordinates returns c such that c[0]·basis[0] + c[1]·basis[1] + c[2]·basis[2] = v.
//
// Errors:
//   - matrix.ErrSingular when the basis vectors are linearly dependent.
func Coordinates(basis [3]matrix.Vec3, v matrix.Vec3) (matrix.Vec3, error) {
	inv, err := basisMatrix(basis).Inverse()
	if err != nil {
		return matrix.Vec3{}, fmt.Errorf("Coordinates: %w", err)
	}

	return inv.MulVec(v), nil
}

// ApplyViaEigenbasis returns A·v for the matrix A with eigenpairs
// (values[i], vectors[i]):
//
//	Stage 1: c = P⁻¹·v.
//	Stage 2: A·v = Σ cᵢ·λᵢ·vᵢ.
func ApplyViaEigenbasis(vectors [3]matrix.Vec3, values [3]float64, v matrix.Vec3) (matrix.Vec3, error) {
	c, err := Coordinates(vectors, v)
	if err != nil {
		return matrix.Vec3{}, fmt.Errorf("ApplyViaEigenbasis: %w", err)
	}
	var out matrix.Vec3
	for i := 0; i < 3; i++ {
		out = out.Add(vectors[i].Scale(c[i] * values[i]))
	}

	return out, nil
}

// FromEigenpairs reconstructs A = P·diag(values)·P⁻¹ from three independent
// eigenvectors and their eigenvalues.
//
// Errors:
//   - matrix.ErrSingular when the eigenvectors are linearly dependent.
func FromEigenpairs(vectors [3]matrix.Vec3, values [3]float64) (matrix.Mat3, error) {
	p := basisMatrix(vectors)
	inv, err := p.Inverse()
	if err != nil {
		return matrix.Mat3{}, fmt.Errorf("FromEigenpairs: %w", err)
	}

	return p.Mul(matrix.Diag3(values[0], values[1], values[2])).Mul(inv), nil
}

// MinimalPolynomialDegree returns the number of distinct eigenvalues, two
// values being the same when they differ by at most eps. For a
// diagonalizable matrix this is the degree of its minimal polynomial.
// An empty input yields 0.
func MinimalPolynomialDegree(values []float64, eps float64) int {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	n := 1
	last := sorted[0]
	for _, v := range sorted[1:] {
		if !scalar.EqualWithinAbs(v, last, eps) {
			n++
			last = v
		}
	}

	return n
}
