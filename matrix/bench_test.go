// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for the parallel product,
// using deterministic random fill.
package matrix_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/workerpool"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{16, 32, 64}

// sink to defeat dead-code elimination
var sinkM *matrix.Matrix[float64]

// BenchmarkMultiplyPerCallPool measures the reference behaviour: a pool is
// started and stopped for every product.
func BenchmarkMultiplyPerCallPool(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			A := randFloats(b, rng, n, n)
			B := randFloats(b, rng, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Multiply(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// BenchmarkMultiplySharedPool reuses one pool and compares both collectors.
func BenchmarkMultiplySharedPool(b *testing.B) {
	b.ReportAllocs()
	pool, err := workerpool.New()
	if err != nil {
		b.Fatal(err)
	}
	if err = pool.Start(); err != nil {
		b.Fatal(err)
	}
	defer func() { _ = pool.Stop() }()

	for _, mode := range []matrix.CollectMode{matrix.CollectOrdered, matrix.CollectUnordered} {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", mode, n), func(b *testing.B) {
				rng := rand.New(rand.NewSource(4242))
				A := randFloats(b, rng, n, n)
				B := randFloats(b, rng, n, n)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := matrix.MultiplyContext(context.Background(), A, B,
						matrix.WithPool(pool), matrix.WithCollector(mode))
					if err != nil {
						b.Fatal(err)
					}
					sinkM = m
				}
			})
		}
	}
}
