// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of different length.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")
)

// vectorErrorf prefixes err with the operation tag, keeping errors.Is intact.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
