// Package matrix is the small-matrix linear-algebra kernel of matgeo.
//
// The matrix package provides:
//
//   - Fixed-size value types Vec3, Mat2 and Mat3 with closed-form determinant,
//     inverse (adjugate over determinant), product, transpose and mat-vec.
//   - Eigen2: the real eigenvalue pair of a 2×2 matrix, or ErrComplexEigenvalues.
//   - Dense, a flat-buffer rows×cols float64 matrix behind the Matrix interface,
//     with Det and Inverse for n ≤ 3 and general Add/Sub/Mul/Transpose/Scale/MatVec.
//   - IntDense and Rank: fraction-free (division-free) Gaussian elimination on
//     integers, with an overflow-checked int64 path (Rank) and an exact
//     big.Int path (RankExact, RankOf).
//
// Failure is always an explicit error: ErrSingular when |det| < SingularTol
// (1e-9, fixed), ErrComplexEigenvalues when the discriminant is negative.
// Outputs returned alongside an error are zero values and must not be used.
//
// All routines are pure; they keep no state and may be called from any goroutine.
//
//	inv, err := matrix.Inverse3(matrix.Mat3{{1, 0, -1}, {2, 1, 1}, {1, 1, 0}})
//	if errors.Is(err, matrix.ErrSingular) { ... }
package matrix
