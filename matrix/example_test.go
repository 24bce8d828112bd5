// SPDX-License-Identifier: MIT

package matrix_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/workerpool"
)

// ExampleMultiply multiplies a 2x3 matrix by a 3x2 matrix.
func ExampleMultiply() {
	a := matrix.MustNew([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	b := matrix.MustNew([]int{1, 2, 3, 4, 5, 6}, 3, 2)

	c, err := matrix.Multiply(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)
	fmt.Printf("%#v\n", c)
	// Output:
	// {22 28, 49 64}
	// Matrix(row=2, col=2, {22 28, 49 64})
}

// ExampleMultiply_mismatch shows the recoverable dimension error.
func ExampleMultiply_mismatch() {
	a := matrix.MustNew([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	b := matrix.MustNew([]int{1, 2, 3, 4}, 2, 2)

	_, err := matrix.Multiply(a, b)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))
	// Output:
	// true
}

// ExampleMatrix_Mul uses the operator form.
func ExampleMatrix_Mul() {
	a := matrix.MustNew([]int{1, 2, 3, 4}, 2, 2)
	fmt.Println(a.Mul(a))
	// Output:
	// {7 10, 15 22}
}

// ExampleMultiplyContext reuses one pool across several products.
func ExampleMultiplyContext() {
	pool, err := workerpool.New(workerpool.WithWorkers(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = pool.Start(); err != nil {
		fmt.Println(err)
		return
	}
	defer func() { _ = pool.Stop() }()

	id, _ := matrix.Identity[float64](2)
	m := matrix.MustNew([]float64{0.5, 1, 2, 4}, 2, 2)
	for i := 0; i < 2; i++ {
		m, err = matrix.MultiplyContext(context.Background(), m, id,
			matrix.WithPool(pool), matrix.WithCollector(matrix.CollectUnordered))
		if err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Println(m)
	// Output:
	// {0.5 1, 2 4}
}
