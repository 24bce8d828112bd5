// SPDX-License-Identifier: MIT

package numeric

// Signed covers every built-in signed integer kind.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned covers every built-in unsigned integer kind.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float covers the IEEE-754 kinds.
type Float interface {
	~float32 | ~float64
}

// Complex covers the complex kinds.
type Complex interface {
	~complex64 | ~complex128
}

// Real covers every ordered kind that converts to float64 without leaving the
// real line.
type Real interface {
	Signed | Unsigned | Float
}

// Element is the sole requirement placed on matrix and vector elements.
// Every member of the type set is a ring under + and * with the zero value
// as additive identity.
type Element interface {
	Signed | Unsigned | Float | Complex
}

// Zero returns the additive identity of T.
// Complexity: O(1).
func Zero[T Element]() T {
	var z T

	return z
}

// One returns the multiplicative identity of T.
// Complexity: O(1).
func One[T Element]() T {
	return T(1)
}
