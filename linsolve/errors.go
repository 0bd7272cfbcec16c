// SPDX-License-Identifier: MIT

package linsolve

import "errors"

var (
	// ErrFullRank is returned by NullVector for a non-singular matrix:
	// the only solution of A·x = 0 is x = 0.
	ErrFullRank = errors.New("linsolve: matrix has full rank")

	// ErrDegenerate is returned by NullVector when rank A < 2 and the
	// solution space has more than one dimension.
	ErrDegenerate = errors.New("linsolve: solution space is not one-dimensional")

	// ErrNotAffine is returned by CriticalParameter when the parameter
	// pattern spans more than one row and more than one column, so the
	// determinant is not affine in k.
	ErrNotAffine = errors.New("linsolve: parameter must enter a single row or column")

	// ErrNoCriticalValue is returned by CriticalParameter when the
	// determinant does not change with k.
	ErrNoCriticalValue = errors.New("linsolve: determinant does not depend on the parameter")
)
