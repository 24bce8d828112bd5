// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/matmul/numeric"
)

const (
	opAt  = "At"
	opDot = "Dot"
)

// Vector is an immutable, owned sequence of elements.
type Vector[T numeric.Element] struct {
	data []T
}

// New copies values into a fresh Vector.
// Complexity: O(n).
func New[T numeric.Element](values []T) Vector[T] {
	data := make([]T, len(values))
	copy(data, values)

	return Vector[T]{data: data}
}

// FromRow copies row i out of a row-major buffer with cols columns.
// The caller guarantees 0 <= i and (i+1)*cols <= len(src).
// Complexity: O(cols).
func FromRow[T numeric.Element](src []T, cols, i int) Vector[T] {
	return New(src[i*cols : (i+1)*cols])
}

// FromColumn copies column j out of a row-major buffer with cols columns by
// striding through src starting at offset j with step cols.
// The caller guarantees 0 <= j < cols.
// Complexity: O(len(src)/cols).
func FromColumn[T numeric.Element](src []T, cols, j int) Vector[T] {
	data := make([]T, 0, len(src)/cols)
	for k := j; k < len(src); k += cols {
		data = append(data, src[k])
	}

	return Vector[T]{data: data}
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		return numeric.Zero[T](), vectorErrorf(opAt, fmt.Errorf("index %d of %d: %w", i, len(v.data), ErrOutOfRange))
	}

	return v.data[i], nil
}

// Values returns a copy of the elements.
func (v Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// String renders the vector as [v0 v1 ...].
func (v Vector[T]) String() string {
	return fmt.Sprint(v.data)
}
