// SPDX-License-Identifier: MIT

// Package numeric declares the element contract shared by vector and matrix.
//
// Any type satisfying Element supports:
//   - multiplication and addition producing the same type,
//   - in-place accumulation (+=),
//   - a zero value that is the additive identity,
//   - value copy (no ownership transfer cost),
//   - safe transfer between goroutines (no borrowed data).
//
// Integers, floats and complex numbers (and named types over them) qualify.
//
//	var acc T = numeric.Zero[T]()
//	acc += a * b
package numeric
