// SPDX-License-Identifier: MIT

// Package matrix provides a generic, immutable, row-major dense matrix and a
// parallel multiplication engine built on dot-product tasks.
//
// 🚀 How Multiply works
//
//	For every output cell (i, j), in row-major order, the dispatcher copies
//	row i of A and column j of B into owned vectors and submits one task to
//	worker idx % N, where idx = i*B.Cols() + j. Each worker computes the dot
//	product and replies on a channel private to that task. The collector waits
//	on those replies and scatters each value to data[idx].
//
// ✨ Key properties:
//   - Inputs are never mutated; every product is a fresh Matrix.
//   - Placement is deterministic even though completion order is not.
//   - Dimension mismatch is detected before any worker is started.
//   - Any task failure (including a recovered panic) fails the whole product.
//   - Context cancellation stops collection.
//
// ⚙️ Usage:
//
//	a, _ := matrix.New([]int{1, 2, 3, 4, 5, 6}, 2, 3)
//	b, _ := matrix.New([]int{1, 2, 3, 4, 5, 6}, 3, 2)
//	c, err := matrix.Multiply(a, b) // {22 28, 49 64}
//
//	// reuse one pool across many products
//	pool, _ := workerpool.New(workerpool.WithWorkers(8))
//	_ = pool.Start()
//	defer pool.Stop()
//	c, err = matrix.MultiplyContext(ctx, a, b, matrix.WithPool(pool))
//
// Collection modes:
//   - CollectOrdered (default) awaits replies in dispatch order. A slow task
//     holds back every later cell (head-of-line blocking).
//   - CollectUnordered drains one shared completion channel and scatters by
//     index as results arrive.
//
// Complexity:
//   - Time O(r*n*c) total work, split over N workers.
//   - Memory O(r*c*(n+1)): each task owns copies of its row and column.
package matrix
