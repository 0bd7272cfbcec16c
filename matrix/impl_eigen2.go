// SPDX-License-Identifier: MIT

// Package matrix - real eigenvalues of a 2×2 matrix.
package matrix

import "math"

// Eigen2 returns the real eigenvalues of [[a, b], [c, d]].
//
// Implementation:
//   - Stage 1: trace = a + d, det = ad − bc.
//   - Stage 2: disc = trace² − 4·det (characteristic polynomial λ² − trace·λ + det).
//   - Stage 3: disc ≥ 0 ⇒ λ = (trace ± √disc) / 2; disc < 0 ⇒ ErrComplexEigenvalues.
//
// Behavior highlights:
//   - The complex case is only signalled; no complex values are computed and the
//     returned EigenPair is the zero value.
//   - L1 ≥ L2 always.
//
// Complexity: O(1).
func Eigen2(a, b, c, d float64) (EigenPair, error) {
	trace := a + d
	det := a*d - b*c
	disc := trace*trace - 4*det
	if disc < 0 {
		return EigenPair{}, matrixErrorf(opEigen2, ErrComplexEigenvalues)
	}
	root := math.Sqrt(disc)

	return EigenPair{
		L1: (trace + root) / 2.0,
		L2: (trace - root) / 2.0,
	}, nil
}

// Eigenvalues returns the real eigenvalues of m; see Eigen2.
func (m Mat2) Eigenvalues() (EigenPair, error) {
	return Eigen2(m[0][0], m[0][1], m[1][0], m[1][1])
}

// Discriminant returns trace² − 4·det; its sign selects real vs complex roots.
func (m Mat2) Discriminant() float64 {
	t := m.Trace()

	return t*t - 4*m.Det()
}
