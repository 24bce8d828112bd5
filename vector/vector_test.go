// SPDX-License-Identifier: MIT

// Package vector_test covers construction of row/column views and the
// dot-product kernel.
package vector_test

import (
	"testing"

	"github.com/katalvlaran/matmul/vector"
	"github.com/stretchr/testify/require"
)

// TestNewCopiesInput ensures New does not alias the caller's slice.
func TestNewCopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	v := vector.New(src)
	src[0] = 99 // mutate the source after construction

	got, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1, got)
	require.Equal(t, 3, v.Len())
}

// TestValuesReturnsCopy ensures Values cannot be used to mutate the view.
func TestValuesReturnsCopy(t *testing.T) {
	v := vector.New([]float64{1.5, 2.5})
	vals := v.Values()
	vals[1] = -1

	require.Equal(t, []float64{1.5, 2.5}, v.Values())
}

// TestAtOutOfRange verifies bounds checks on both sides.
func TestAtOutOfRange(t *testing.T) {
	v := vector.New([]int{4, 5})

	_, err := v.At(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	_, err = v.At(2)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
}

// TestFromRowAndColumn extracts views from a 3x2 row-major buffer.
func TestFromRowAndColumn(t *testing.T) {
	// [[1 2]
	//  [3 4]
	//  [5 6]]
	data := []int{1, 2, 3, 4, 5, 6}

	tests := []struct {
		name string
		got  vector.Vector[int]
		want []int
	}{
		{"row0", vector.FromRow(data, 2, 0), []int{1, 2}},
		{"row2", vector.FromRow(data, 2, 2), []int{5, 6}},
		{"col0", vector.FromColumn(data, 2, 0), []int{1, 3, 5}},
		{"col1", vector.FromColumn(data, 2, 1), []int{2, 4, 6}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.got.Values())
		})
	}

	// views are detached from the source buffer
	col := vector.FromColumn(data, 2, 1)
	data[1] = 100
	require.Equal(t, []int{2, 4, 6}, col.Values())
}

// TestString renders the bracketed form.
func TestString(t *testing.T) {
	require.Equal(t, "[1 2 3]", vector.New([]int{1, 2, 3}).String())
}
