// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/matmul/numeric"
	"github.com/katalvlaran/matmul/vector"
)

// reply carries the value for output cell idx, or the reason it has none.
type reply[T numeric.Element] struct {
	idx   int
	value T
	err   error
}

// dotTask computes one output cell. It owns its row and column views and
// sends exactly one reply: from Run on completion, or from Fail when the
// worker recovered a panic.
type dotTask[T numeric.Element] struct {
	idx   int
	row   vector.Vector[T]
	col   vector.Vector[T]
	reply chan<- reply[T] // has room for this task's reply, so sends never block
}

// Run computes row·col and delivers it.
func (t *dotTask[T]) Run() {
	v, err := vector.Dot(t.row, t.col)
	t.reply <- reply[T]{idx: t.idx, value: v, err: err}
}

// Fail delivers err in place of a value.
func (t *dotTask[T]) Fail(err error) {
	t.reply <- reply[T]{idx: t.idx, err: err}
}
