// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/matmul/numeric"
	"gonum.org/v1/gonum/mat"
)

// FromGonum copies a gonum matrix into a Matrix[float64].
// Views with a stride wider than their column count are handled.
//
// Errors:
//   - ErrNilMatrix if d is nil.
//   - ErrShape if d is empty.
//
// Complexity: O(r*c).
func FromGonum(d mat.Matrix) (*Matrix[float64], error) {
	if d == nil {
		return nil, matrixErrorf(opGonum, ErrNilMatrix)
	}
	if e, ok := d.(interface{ IsEmpty() bool }); ok && e.IsEmpty() {
		return nil, matrixErrorf(opGonum, ErrShape)
	}
	r, c := d.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opGonum, fmt.Errorf("%dx%d: %w", r, c, ErrShape))
	}
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = d.At(i, j)
		}
	}

	return &Matrix[float64]{data: data, rows: r, cols: c}, nil
}

// ToGonum converts m to a *mat.Dense, widening every element to float64.
//
// Errors:
//   - ErrNilMatrix if m is nil.
//   - ErrShape if m is a zero-value Matrix.
//
// Complexity: O(r*c).
func ToGonum[T numeric.Real](m *Matrix[T]) (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opToGonum, ErrNilMatrix)
	}
	if err := checkOperand(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	data := make([]float64, len(m.data))
	for k, v := range m.data {
		data[k] = float64(v)
	}

	return mat.NewDense(m.rows, m.cols, data), nil
}
