// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/matmul/numeric"
)

// Dot returns the inner product of a and b.
//
// Accumulation starts from the additive identity and proceeds in
// index-ascending order, so results are reproducible for element types where
// addition is not associative (floats).
//
// Errors:
//   - ErrDimensionMismatch if a.Len() != b.Len().
//
// Complexity: O(n) time, O(1) memory.
func Dot[T numeric.Element](a, b Vector[T]) (T, error) {
	return DotSlices(a.data, b.data)
}

// DotSlices is Dot over raw slices.
func DotSlices[T numeric.Element](a, b []T) (T, error) {
	if len(a) != len(b) {
		return numeric.Zero[T](), vectorErrorf(opDot, fmt.Errorf("%d != %d: %w", len(a), len(b), ErrDimensionMismatch))
	}
	sum := numeric.Zero[T]()
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum, nil
}
