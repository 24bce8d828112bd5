// SPDX-License-Identifier: MIT

// Package vector provides the owned row/column views used as operands of a
// dot product, and the dot-product kernel itself.
//
// A Vector is a private copy: it never aliases the matrix it was cut from,
// so it can be handed to another goroutine without synchronisation.
//
//	row := vector.FromRow(a, aCols, i)      // contiguous copy of row i
//	col := vector.FromColumn(b, bCols, j)   // strided copy of column j
//	v, err := vector.Dot(row, col)
//
// Complexity:
//   - FromRow / FromColumn: O(n) time and memory.
//   - Dot: O(n) time, O(1) memory.
package vector
