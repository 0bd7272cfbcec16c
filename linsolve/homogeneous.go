// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matgeo/matrix"
)

// Solutions classifies the solution set of a homogeneous system A·x = 0.
type Solutions int

const (
	// Unique means only the trivial solution x = 0 exists.
	Unique Solutions = iota
	// Infinite means a non-trivial solution space exists.
	Infinite
)

// String returns "unique" or "infinite".
func (s Solutions) String() string {
	switch s {
	case Unique:
		return "unique"
	case Infinite:
		return "infinite"
	default:
		return fmt.Sprintf("Solutions(%d)", int(s))
	}
}

// ClassifyHomogeneous reports whether A·x = 0 has only the trivial solution.
// The test is |det A| ≥ matrix.SingularTol, the same threshold Inverse3 uses.
func ClassifyHomogeneous(a matrix.Mat3) Solutions {
	if math.Abs(a.Det()) >= matrix.SingularTol {
		return Unique
	}

	return Infinite
}

// NullVector returns a unit vector x with A·x = 0 for a rank-2 matrix A.
//
// Implementation:
//   - Stage 1: |det A| ≥ SingularTol ⇒ ErrFullRank.
//   - Stage 2: x is orthogonal to every row, so it is parallel to the cross
//     product of any two independent rows. Take the pair with the largest
//     cross product.
//   - Stage 3: that cross product below SingularTol in length ⇒ all rows are
//     parallel (rank ≤ 1) ⇒ ErrDegenerate.
//   - Stage 4: normalize, with the largest-magnitude component made positive.
func NullVector(a matrix.Mat3) (matrix.Vec3, error) {
	if ClassifyHomogeneous(a) == Unique {
		return matrix.Vec3{}, fmt.Errorf("NullVector: %w", ErrFullRank)
	}

	var best matrix.Vec3
	bestNorm := 0.0
	for _, pair := range [3][2]int{{0, 1}, {0, 2}, {1, 2}} {
		x := a.Row(pair[0]).Cross(a.Row(pair[1]))
		if n := x.Norm(); n > bestNorm {
			best, bestNorm = x, n
		}
	}
	if bestNorm < matrix.SingularTol {
		return matrix.Vec3{}, fmt.Errorf("NullVector: %w", ErrDegenerate)
	}

	best = best.Scale(1 / bestNorm)
	k := 0
	for i := 1; i < 3; i++ {
		if math.Abs(best[i]) > math.Abs(best[k]) {
			k = i
		}
	}
	if best[k] < 0 {
		best = best.Scale(-1)
	}

	return best, nil
}

// CriticalParameter returns the k for which det(A + k·B) = 0, so that the
// homogeneous system (A + k·B)·x = 0 has non-trivial solutions. B marks
// where and how k enters the coefficients; its non-zero entries must lie in a
// single row or a single column. Cofactor expansion along that row (or
// column) makes the determinant affine in k:
//
//	det(A + k·B) = det A + k·(det(A + B) − det A)
//
// so k = −det A / (det(A + B) − det A).
//
// Errors:
//   - ErrNotAffine when B has non-zero entries in two rows and two columns.
//   - ErrNoCriticalValue when the slope is below matrix.SingularTol in
//     magnitude (B = 0, or k multiplies a zero cofactor).
func CriticalParameter(a, b matrix.Mat3) (float64, error) {
	if !singleLine(b) {
		return 0, fmt.Errorf("CriticalParameter: %w", ErrNotAffine)
	}
	d0 := a.Det()
	slope := a.Add(b).Det() - d0
	if math.Abs(slope) < matrix.SingularTol {
		return 0, fmt.Errorf("CriticalParameter: %w", ErrNoCriticalValue)
	}

	return -d0 / slope, nil
}

// singleLine reports whether the non-zero entries of b fit in one row or
// one column.
func singleLine(b matrix.Mat3) bool {
	var rows, cols [3]bool
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if b[i][j] != 0 {
				rows[i], cols[j] = true, true
			}
		}
	}
	count := func(v [3]bool) int {
		n := 0
		for _, x := range v {
			if x {
				n++
			}
		}

		return n
	}

	return count(rows) <= 1 || count(cols) <= 1
}

// Solve returns x with A·x = b.
//
// Errors:
//   - matrix.ErrSingular when |det A| < matrix.SingularTol; use
//     ClassifyHomogeneous and NullVector to describe that case.
func Solve(a matrix.Mat3, b matrix.Vec3) (matrix.Vec3, error) {
	inv, err := matrix.Inverse3(a)
	if err != nil {
		return matrix.Vec3{}, fmt.Errorf("Solve: %w", err)
	}

	return inv.MulVec(b), nil
}
