// Package matgeo is a small numeric toolkit for 2D/3D analytic geometry and
// the linear algebra behind it: fixed-size matrix kernels with explicit
// failure signals, tangents and parabolas, eigenbasis reconstruction,
// homogeneous systems, a pendulum equilibrium and plots of the
// constructions.
//
// Everything lives in subpackages:
//
//	matrix/    2×2 and 3×3 determinants and inverses (singular below 1e-9),
//	           exact integer rank, 2×2 real eigenvalues, a small Dense type
//	geometry/  tangent length and points, parabola tangents, enclosed areas,
//	           collinearity
//	linsolve/  A from eigenpairs, minimal-polynomial degree, A·x = 0 and
//	           the parameter that makes it singular
//	statics/   string tension and horizontal force for a deflected weight
//	figure/    gonum/plot renderings of the geometry constructions
//
// All routines are synchronous and stateless, so they are safe to call from
// any goroutine. Failures are returned as wrapped sentinel errors, matched
// with errors.Is:
//
//	inv, err := matrix.Inverse3(a)
//	if errors.Is(err, matrix.ErrSingular) { ... }
//
// Runnable scenarios live under examples/.
package matgeo
