// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matmul/numeric"
	"github.com/katalvlaran/matmul/vector"
)

// Matrix is an immutable row-major dense matrix.
// Element (i, j) lives at data[i*cols+j]; len(data) == rows*cols always.
type Matrix[T numeric.Element] struct {
	data []T // flat backing storage, never shared with callers
	rows int
	cols int
}

// New copies data into an rows×cols Matrix.
// Stage 1 (Validate): rows, cols > 0, rows*cols fits in an int, and
// len(data) == rows*cols.
// Stage 2 (Finalize): copy into private storage.
//
// Errors:
//   - ErrShape on any shape violation.
//
// Complexity: O(rows*cols).
func New[T numeric.Element](data []T, rows, cols int) (*Matrix[T], error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opNew, fmt.Errorf("len %d != %d*%d: %w", len(data), rows, cols, ErrShape))
	}
	owned := make([]T, len(data))
	copy(owned, data)

	return &Matrix[T]{data: owned, rows: rows, cols: cols}, nil
}

// MustNew is New that panics on error. Intended for literals and tests.
func MustNew[T numeric.Element](data []T, rows, cols int) *Matrix[T] {
	m, err := New(data, rows, cols)
	if err != nil {
		panic(err)
	}

	return m
}

// Zeros returns an rows×cols matrix of additive identities.
func Zeros[T numeric.Element](rows, cols int) (*Matrix[T], error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Matrix[T]{data: make([]T, rows*cols), rows: rows, cols: cols}, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²).
func Identity[T numeric.Element](n int) (*Matrix[T], error) {
	m, err := Zeros[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = numeric.One[T]()
	}

	return m, nil
}

// FromRows builds a matrix from a slice of equal-length rows.
//
// Errors:
//   - ErrShape if rows is empty, the first row is empty, or rows are ragged.
func FromRows[T numeric.Element](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrShape)
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrShape))
		}
		data = append(data, row...)
	}

	return &Matrix[T]{data: data, rows: len(rows), cols: cols}, nil
}

// checkShape rejects non-positive dimensions and shapes whose element count
// overflows int.
func checkShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrShape)
	}
	if cols > math.MaxInt/rows {
		return fmt.Errorf("%dx%d overflows int: %w", rows, cols, ErrShape)
	}

	return nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix[T]) Shape() (int, int) { return m.rows, m.cols }

// At returns element (i, j) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(i, j int) (T, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return numeric.Zero[T](), matrixErrorf(opAt, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange))
	}

	return m.data[i*m.cols+j], nil
}

// Data returns a copy of the row-major backing slice.
func (m *Matrix[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Row returns an owned copy of row i.
func (m *Matrix[T]) Row(i int) (vector.Vector[T], error) {
	if i < 0 || i >= m.rows {
		return vector.Vector[T]{}, matrixErrorf(opRow, fmt.Errorf("%d of %d: %w", i, m.rows, ErrOutOfRange))
	}

	return vector.FromRow(m.data, m.cols, i), nil
}

// Col returns an owned copy of column j.
func (m *Matrix[T]) Col(j int) (vector.Vector[T], error) {
	if j < 0 || j >= m.cols {
		return vector.Vector[T]{}, matrixErrorf(opCol, fmt.Errorf("%d of %d: %w", j, m.cols, ErrOutOfRange))
	}

	return vector.FromColumn(m.data, m.cols, j), nil
}

// Equal reports whether m and other have the same shape and elements.
// Two nil matrices are equal.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// ToRows returns the matrix as a fresh slice of rows.
func (m *Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.rows)
	for i := range out {
		out[i] = make([]T, m.cols)
		copy(out[i], m.data[i*m.cols:(i+1)*m.cols])
	}

	return out
}
