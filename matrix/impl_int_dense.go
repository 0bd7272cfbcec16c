// SPDX-License-Identifier: MIT

// Package matrix - IntDense: row-major int64 storage for exact integer routines.
package matrix

import (
	"fmt"
	"strings"
)

// IntDense is a row-major matrix of int64 values (offset = i*c + j).
type IntDense struct {
	r, c int
	data []int64
}

var _ fmt.Stringer = (*IntDense)(nil)

// NewIntDense creates an r×c zero integer matrix.
// Returns ErrInvalidDimensions when rows<=0 or cols<=0.
func NewIntDense(rows, cols int) (*IntDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &IntDense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewIntDenseFrom copies a rectangular nested slice.
// Returns ErrBadShape for empty or ragged input.
func NewIntDenseFrom(rows [][]int64) (*IntDense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewIntDenseFrom: %w", ErrBadShape)
	}
	m, err := NewIntDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewIntDenseFrom: row %d has %d entries, want %d: %w", i, len(row), m.c, ErrBadShape)
		}
		copy(m.data[i*m.c:], row)
	}

	return m, nil
}

// NewIntDenseFlat copies a row-major buffer of length rows*cols.
func NewIntDenseFlat(rows, cols int, data []int64) (*IntDense, error) {
	m, err := NewIntDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewIntDenseFlat: len %d for %dx%d: %w", len(data), rows, cols, ErrBadShape)
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the row count.
func (m *IntDense) Rows() int { return m.r }

// Cols returns the column count.
func (m *IntDense) Cols() int { return m.c }

// At returns the value at (row, col) or ErrOutOfRange.
func (m *IntDense) At(row, col int) (int64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("IntDense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *IntDense) Set(row, col int, v int64) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fmt.Errorf("IntDense.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Clone returns a deep copy.
func (m *IntDense) Clone() *IntDense {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &IntDense{r: m.r, c: m.c, data: cp}
}

// String dumps rows for diagnostics.
func (m *IntDense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%d", m.data[i*m.c+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
