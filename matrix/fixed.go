// SPDX-License-Identifier: MIT

// Package matrix - fixed-size value types.
//
// Vec3, Mat2 and Mat3 are plain arrays: they live on the stack, are copied by
// value and therefore can never alias an output. All methods are pure.
package matrix

import "math"

// Vec3 is a 3-component column vector.
type Vec3 [3]float64

// Mat2 is a row-major 2×2 matrix: Mat2{{a, b}, {c, d}}.
type Mat2 [2][2]float64

// Mat3 is a row-major 3×3 matrix.
type Mat3 [3][3]float64

// ---------- Vec3 ----------

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Sub returns v − w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Scale returns s·v.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{s * v[0], s * v[1], s * v[2]} }

// Dot returns v·w.
func (v Vec3) Dot(w Vec3) float64 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// Cross returns v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Sum returns v[0] + v[1] + v[2].
func (v Vec3) Sum() float64 { return v[0] + v[1] + v[2] }

// ---------- Mat3 ----------

// Identity3 returns I₃.
func Identity3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Mat3FromColumns builds the matrix whose columns are c0, c1, c2.
func Mat3FromColumns(c0, c1, c2 Vec3) Mat3 {
	return Mat3{
		{c0[0], c1[0], c2[0]},
		{c0[1], c1[1], c2[1]},
		{c0[2], c1[2], c2[2]},
	}
}

// Diag3 returns diag(d0, d1, d2).
func Diag3(d0, d1, d2 float64) Mat3 {
	return Mat3{{d0, 0, 0}, {0, d1, 0}, {0, 0, d2}}
}

// Row returns row i (0..2) as a vector.
func (m Mat3) Row(i int) Vec3 { return Vec3(m[i]) }

// Col returns column j (0..2) as a vector.
func (m Mat3) Col(j int) Vec3 { return Vec3{m[0][j], m[1][j], m[2][j]} }

// Transpose returns mᵀ.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// MulVec returns m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Mul returns the product m·n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	var i, j, k int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			for k = 0; k < 3; k++ {
				out[i][j] += m[i][k] * n[k][j]
			}
		}
	}

	return out
}

// Add returns m + n.
func (m Mat3) Add(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][j] + n[i][j]
		}
	}

	return out
}

// Scale returns s·m.
func (m Mat3) Scale(s float64) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = s * m[i][j]
		}
	}

	return out
}

// Flat returns the row-major 9-element form.
func (m Mat3) Flat() [9]float64 {
	return [9]float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	}
}

// Mat3FromFlat builds a Mat3 from row-major [a11, a12, a13, a21, ..., a33].
func Mat3FromFlat(f [9]float64) Mat3 {
	return Mat3{{f[0], f[1], f[2]}, {f[3], f[4], f[5]}, {f[6], f[7], f[8]}}
}

// Dense copies m into a new 3×3 *Dense with the default numeric policy.
func (m Mat3) Dense() *Dense {
	f := m.Flat()
	data := make([]float64, 9)
	copy(data, f[:])

	return &Dense{r: 3, c: 3, data: data, validateNaNInf: DefaultValidateNaNInf}
}

// ---------- Mat2 ----------

// Transpose returns mᵀ.
func (m Mat2) Transpose() Mat2 { return Mat2{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}} }

// Trace returns a + d.
func (m Mat2) Trace() float64 { return m[0][0] + m[1][1] }

// MulVec returns m·(x, y).
func (m Mat2) MulVec(x, y float64) (float64, float64) {
	return m[0][0]*x + m[0][1]*y, m[1][0]*x + m[1][1]*y
}

// Dense copies m into a new 2×2 *Dense with the default numeric policy.
func (m Mat2) Dense() *Dense {
	return &Dense{r: 2, c: 2, data: []float64{m[0][0], m[0][1], m[1][0], m[1][1]}, validateNaNInf: DefaultValidateNaNInf}
}
