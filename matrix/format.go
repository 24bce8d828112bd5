// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// String renders the matrix as {v00 v01 ..., v10 v11 ...}: elements of a row
// are space-separated and rows are separated by ", ".
func (m *Matrix[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, m.data[i*m.cols+j])
		}
	}
	sb.WriteByte('}')

	return sb.String()
}

// GoString is the debug form used by %#v: Matrix(row=R, col=C, {...}).
func (m *Matrix[T]) GoString() string {
	if m == nil {
		return "Matrix(nil)"
	}

	return fmt.Sprintf("Matrix(row=%d, col=%d, %s)", m.rows, m.cols, m.String())
}
