// SPDX-License-Identifier: MIT

// Package matrix - rank via fraction-free Gaussian elimination.
//
// Algorithm (identical for the int64 and big.Int paths):
//  1. lead (column) and r (pivot row) start at 0.
//  2. Scan column lead from row r down for the first non-zero entry. If none,
//     advance lead and retry the same r.
//  3. Swap the found row into position r.
//  4. For every other row i with row[i][lead] != 0:
//     row[i][j] = pivot*row[i][j] − factor*row[r][j] for j ≥ lead,
//     where pivot = row[r][lead], factor = row[i][lead].
//     The pivot is never normalized, so magnitudes grow with each step.
//  5. Advance r and lead; stop when rows or columns are exhausted.
//  6. Rank = number of rows with at least one non-zero entry.
//
// No division is ever performed, so integer inputs stay exact. The int64
// path reports ErrOverflow instead of wrapping; RankExact never overflows.
package matrix

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/matgeo/internal/numeric"
)

// Rank returns the rank of an integer matrix using checked int64 arithmetic.
// The input is copied; m is never mutated.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrOverflow when an intermediate product or difference exceeds int64.
//     RankExact computes the same rank without that limit.
//
// Complexity: O(min(r,c) · r · c) multiplications.
func Rank(m *IntDense) (int, error) {
	if m == nil {
		return 0, matrixErrorf(opRank, ErrNilMatrix)
	}
	a := m.Clone()
	rows, cols := a.r, a.c

	var i, j int
	var x, y, z int64
	var ok bool
	lead := 0
	for r := 0; r < rows && lead < cols; {
		i = r
		for i < rows && a.data[i*cols+lead] == 0 {
			i++
		}
		if i == rows {
			lead++ // no pivot in this column; same r, next column

			continue
		}
		a.swapRows(r, i)

		pivot := a.data[r*cols+lead]
		for i = 0; i < rows; i++ {
			if i == r {
				continue
			}
			factor := a.data[i*cols+lead]
			if factor == 0 {
				continue
			}
			for j = lead; j < cols; j++ {
				if x, ok = numeric.MulInt64(pivot, a.data[i*cols+j]); !ok {
					return 0, matrixErrorf(opRank, fmt.Errorf("row %d col %d: %w", i, j, ErrOverflow))
				}
				if y, ok = numeric.MulInt64(factor, a.data[r*cols+j]); !ok {
					return 0, matrixErrorf(opRank, fmt.Errorf("row %d col %d: %w", i, j, ErrOverflow))
				}
				if z, ok = numeric.SubInt64(x, y); !ok {
					return 0, matrixErrorf(opRank, fmt.Errorf("row %d col %d: %w", i, j, ErrOverflow))
				}
				a.data[i*cols+j] = z
			}
		}
		r++
		lead++
	}

	return a.countNonZeroRows(), nil
}

// RankExact returns the rank of an integer matrix using arbitrary-precision
// entries. Same algorithm as Rank; never overflows. m is never mutated.
func RankExact(m *IntDense) (int, error) {
	if m == nil {
		return 0, matrixErrorf(opRank, ErrNilMatrix)
	}
	a := make([]*big.Int, len(m.data))
	for k, v := range m.data {
		a[k] = big.NewInt(v)
	}

	return rankBig(a, m.r, m.c), nil
}

// RankOf returns the rank of a float Matrix whose entries are integers.
// An entry is accepted when it lies within eps (see WithEpsilon) of an integer;
// it is then rounded and eliminated exactly via the big.Int path.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite entry), ErrNonIntegral.
func RankOf(m Matrix, opts ...Option) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	o := gatherOptions(opts...)
	rows, cols := m.Rows(), m.Cols()
	a := make([]*big.Int, rows*cols)

	var i, j int
	var v, rv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opRank, err)
			}
			if !numeric.IsFinite(v) {
				return 0, matrixErrorf(opRank, fmt.Errorf("At(%d,%d): %w", i, j, ErrNaNInf))
			}
			rv = math.Round(v)
			if !numeric.NearlyEqual(v, rv, o.eps) {
				return 0, matrixErrorf(opRank, fmt.Errorf("At(%d,%d)=%g: %w", i, j, v, ErrNonIntegral))
			}
			a[i*cols+j], _ = big.NewFloat(rv).Int(nil)
		}
	}

	return rankBig(a, rows, cols), nil
}

// rankBig runs the elimination in place on a row-major big.Int buffer.
func rankBig(a []*big.Int, rows, cols int) int {
	var i, j int
	x, y := new(big.Int), new(big.Int)
	lead := 0
	for r := 0; r < rows && lead < cols; {
		i = r
		for i < rows && a[i*cols+lead].Sign() == 0 {
			i++
		}
		if i == rows {
			lead++

			continue
		}
		if i != r {
			for j = 0; j < cols; j++ {
				a[r*cols+j], a[i*cols+j] = a[i*cols+j], a[r*cols+j]
			}
		}

		pivot := new(big.Int).Set(a[r*cols+lead])
		for i = 0; i < rows; i++ {
			if i == r || a[i*cols+lead].Sign() == 0 {
				continue
			}
			factor := new(big.Int).Set(a[i*cols+lead])
			for j = lead; j < cols; j++ {
				x.Mul(pivot, a[i*cols+j])
				y.Mul(factor, a[r*cols+j])
				a[i*cols+j] = new(big.Int).Sub(x, y)
			}
		}
		r++
		lead++
	}

	rank := 0
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if a[i*cols+j].Sign() != 0 {
				rank++

				break
			}
		}
	}

	return rank
}

// swapRows exchanges rows r1 and r2 in place.
func (m *IntDense) swapRows(r1, r2 int) {
	if r1 == r2 {
		return
	}
	for j := 0; j < m.c; j++ {
		m.data[r1*m.c+j], m.data[r2*m.c+j] = m.data[r2*m.c+j], m.data[r1*m.c+j]
	}
}

// countNonZeroRows returns the number of rows holding a non-zero entry.
func (m *IntDense) countNonZeroRows() int {
	n := 0
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if m.data[i*m.c+j] != 0 {
				n++

				break
			}
		}
	}

	return n
}
