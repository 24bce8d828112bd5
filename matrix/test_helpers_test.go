// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/stretchr/testify/require"
)

// naiveProduct is the reference triple loop (i-j-k) used as an oracle.
func naiveProduct(t testing.TB, a, b *matrix.Matrix[int]) *matrix.Matrix[int] {
	t.Helper()
	r, n := a.Shape()
	_, c := b.Shape()
	ad, bd := a.Data(), b.Data()
	out := make([]int, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			var sum int
			for k := 0; k < n; k++ {
				sum += ad[i*n+k] * bd[k*c+j]
			}
			out[i*c+j] = sum
		}
	}
	m, err := matrix.New(out, r, c)
	require.NoError(t, err)

	return m
}

// randInts returns an r×c matrix with entries in [-50, 50], seeded for determinism.
func randInts(t testing.TB, rng *rand.Rand, r, c int) *matrix.Matrix[int] {
	t.Helper()
	data := make([]int, r*c)
	for k := range data {
		data[k] = rng.Intn(101) - 50
	}
	m, err := matrix.New(data, r, c)
	require.NoError(t, err)

	return m
}

// randFloats returns an r×c matrix with entries in [-1, 1).
func randFloats(t testing.TB, rng *rand.Rand, r, c int) *matrix.Matrix[float64] {
	t.Helper()
	data := make([]float64, r*c)
	for k := range data {
		data[k] = rng.Float64()*2 - 1
	}
	m, err := matrix.New(data, r, c)
	require.NoError(t, err)

	return m
}
