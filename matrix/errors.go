// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix:". Operations wrap these sentinels
// with an operation tag; callers match with errors.Is.
var (
	// ErrShape is returned when rows or cols are not positive, when the
	// backing data length differs from rows*cols, or when input rows are ragged.
	ErrShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a.Cols() != b.Rows() in a product.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrTaskFailed indicates that a dot-product task did not deliver a value.
	// The task's own error is wrapped alongside it.
	ErrTaskFailed = errors.New("matrix: task failed")
)

const (
	opNew      = "New"
	opFromRows = "FromRows"
	opAt       = "At"
	opRow      = "Row"
	opCol      = "Col"
	opMul      = "Multiply"
	opGonum    = "FromGonum"
	opToGonum  = "ToGonum"
)

// matrixErrorf prefixes err with tag, keeping errors.Is intact.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
