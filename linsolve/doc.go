// Package linsolve solves small linear problems on top of the matrix kernel.
//
// Eigenbasis routines take three eigenvectors v₁, v₂, v₃ (the columns of P)
// and their eigenvalues λ₁, λ₂, λ₃ of a diagonalizable 3×3 matrix A:
//
//   - Coordinates: c with P·c = v, i.e. v = Σ cᵢ·vᵢ.
//   - ApplyViaEigenbasis: A·v = Σ cᵢ·λᵢ·vᵢ without ever forming A.
//   - FromEigenpairs: A = P·diag(λ)·P⁻¹.
//   - MinimalPolynomialDegree: for diagonalizable A the minimal polynomial is
//     Π (x − μ) over the distinct eigenvalues μ, so its degree is their count.
//
// Homogeneous systems A·x = 0:
//
//   - ClassifyHomogeneous: Unique (only x = 0) when |det A| ≥ matrix.SingularTol,
//     Infinite otherwise.
//   - NullVector: a unit solution x ≠ 0 when rank A = 2.
//   - CriticalParameter: the k for which (A + k·B)·x = 0 has non-trivial
//     solutions, when k enters one row or one column.
//
// Solve handles the inhomogeneous case A·x = b through matrix.Inverse3.
// A dependent eigenbasis or a singular coefficient matrix is reported with
// matrix.ErrSingular.
package linsolve
