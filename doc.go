// Package matmul multiplies dense matrices by splitting the product into
// independent dot-product tasks and running them on a fixed pool of workers.
//
// 🚀 What is inside?
//
//	numeric/    the element contract (integers, floats, complex numbers)
//	vector/     owned row/column views and the dot-product kernel
//	workerpool/ N long-lived workers, per-worker FIFO queues, idx % N routing
//	matrix/     immutable row-major Matrix, Multiply / Mul, gonum conversion
//
// ✨ Guarantees:
//   - Deterministic output placement regardless of completion order.
//   - Dimension mismatch is reported before any work is dispatched.
//   - A failed or panicking task fails the whole product; no zero-filled cells.
//   - Pools can be injected and reused across products.
//
// Quick example:
//
//	a := matrix.MustNew([]int{1, 2, 3, 4, 5, 6}, 2, 3)
//	b := matrix.MustNew([]int{1, 2, 3, 4, 5, 6}, 3, 2)
//	c, err := matrix.Multiply(a, b)
//	fmt.Println(c) // {22 28, 49 64}
//
//	go get github.com/katalvlaran/matmul
package matmul
