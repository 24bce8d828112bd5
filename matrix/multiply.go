// SPDX-License-Identifier: MIT

package matrix

import (
	"context"
	"fmt"

	"github.com/katalvlaran/matmul/numeric"
	"github.com/katalvlaran/matmul/vector"
	"github.com/katalvlaran/matmul/workerpool"
	"go.uber.org/zap"
)

// Multiply returns a·b using a pool of DefaultWorkers started for this call
// and stopped before returning.
//
// Errors:
//   - ErrNilMatrix, ErrShape, ErrDimensionMismatch (before any worker starts).
//   - ErrTaskFailed if any cell could not be computed.
func Multiply[T numeric.Element](a, b *Matrix[T]) (*Matrix[T], error) {
	return MultiplyContext(context.Background(), a, b)
}

// Mul is the operator form of Multiply: it panics on any error, including a
// dimension mismatch. Use Multiply for recoverable behaviour.
func (m *Matrix[T]) Mul(b *Matrix[T]) *Matrix[T] {
	c, err := Multiply(m, b)
	if err != nil {
		panic(err)
	}

	return c
}

// MultiplyContext returns a·b, configured by opts.
//
// Stage 1 (Validate): nil checks, positive operand shapes, a.Cols() == b.Rows()
// and a result size that fits in an int; nothing is started on failure.
// Stage 2 (Prepare): use the injected pool, or start a private one.
// Stage 3 (Dispatch): one task per output cell in row-major order, routed to
// worker idx % N.
// Stage 4 (Collect): gather one reply per task and scatter by index.
//
// Errors:
//   - ErrNilMatrix, ErrShape, ErrDimensionMismatch.
//   - workerpool.ErrInvalidWorkers, workerpool.ErrPoolClosed,
//     workerpool.ErrNotStarted from pool setup or dispatch.
//   - ErrTaskFailed (wrapping the task error) on the first failed cell.
//   - ctx.Err() if ctx is done before every reply arrived.
//
// Complexity: O(r*n*c) work, O(r*c*n) memory for the task views.
func MultiplyContext[T numeric.Element](ctx context.Context, a, b *Matrix[T], opts ...Option) (res *Matrix[T], err error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if err = checkOperand(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.cols != b.rows {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch))
	}
	if err = checkShape(a.rows, b.cols); err != nil {
		return nil, matrixErrorf(opMul, fmt.Errorf("result: %w", err))
	}
	o := gatherOptions(opts...)

	pool := o.pool
	if pool == nil {
		p, perr := workerpool.New(workerpool.WithWorkers(o.workers), workerpool.WithLogger(o.logger))
		if perr != nil {
			return nil, matrixErrorf(opMul, perr)
		}
		if perr = p.Start(); perr != nil {
			return nil, matrixErrorf(opMul, perr)
		}
		defer func() {
			// on failure, abandoned tasks are still queued; drain them in the
			// background so cancellation returns promptly
			if err != nil {
				go stopPool(p, o.logger)
				return
			}
			stopPool(p, o.logger)
		}()
		pool = p
	}

	n := a.rows * b.cols
	o.logger.Debug("multiply dispatch",
		zap.Int("rows", a.rows),
		zap.Int("inner", a.cols),
		zap.Int("cols", b.cols),
		zap.Int("tasks", n),
		zap.Int("workers", pool.Size()),
		zap.Stringer("collect", o.collect),
	)

	data := make([]T, n)
	switch o.collect {
	case CollectUnordered:
		sink := make(chan reply[T], n)
		if err = dispatch(pool, a, b, func(int) chan<- reply[T] { return sink }); err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		err = collectUnordered(ctx, sink, n, data)
	default:
		handles := make([]<-chan reply[T], 0, n)
		err = dispatch(pool, a, b, func(int) chan<- reply[T] {
			ch := make(chan reply[T], 1)
			handles = append(handles, ch)
			return ch
		})
		if err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		err = collectOrdered(ctx, handles, data)
	}
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return &Matrix[T]{data: data, rows: a.rows, cols: b.cols}, nil
}

// checkOperand rejects matrices that did not come from a constructor, such as
// a zero-value Matrix.
func checkOperand[T numeric.Element](ms ...*Matrix[T]) error {
	for _, m := range ms {
		if m.rows <= 0 || m.cols <= 0 || len(m.data) != m.rows*m.cols {
			return fmt.Errorf("operand %dx%d with %d elements: %w", m.rows, m.cols, len(m.data), ErrShape)
		}
	}

	return nil
}

// stopPool stops a per-call pool, logging rather than returning the error:
// the product has already been decided by then.
func stopPool(p *workerpool.Pool, log *zap.Logger) {
	if err := p.Stop(); err != nil {
		log.Warn("stop per-call pool", zap.Error(err))
	}
}

// dispatch submits one dotTask per output cell of a·b in row-major order.
// replyTo is called once per task, in dispatch order, to obtain the channel
// the task will answer on.
func dispatch[T numeric.Element](pool *workerpool.Pool, a, b *Matrix[T], replyTo func(idx int) chan<- reply[T]) error {
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			idx := i*b.cols + j
			task := &dotTask[T]{
				idx:   idx,
				row:   vector.FromRow(a.data, a.cols, i),
				col:   vector.FromColumn(b.data, b.cols, j),
				reply: replyTo(idx),
			}
			if err := pool.Submit(idx, task); err != nil {
				return fmt.Errorf("dispatch (%d,%d): %w", i, j, err)
			}
		}
	}

	return nil
}

// collectOrdered waits on each handle in order and writes its value to
// data[idx]. It stops at the first failed reply or when ctx is done.
func collectOrdered[T numeric.Element](ctx context.Context, handles []<-chan reply[T], data []T) error {
	for _, h := range handles {
		select {
		case r := <-h:
			if err := store(r, data); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

// collectUnordered reads n replies from sink in completion order and writes
// each value to data[idx]. It stops at the first failed reply or when ctx is
// done.
func collectUnordered[T numeric.Element](ctx context.Context, sink <-chan reply[T], n int, data []T) error {
	for k := 0; k < n; k++ {
		select {
		case r := <-sink:
			if err := store(r, data); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

// store scatters a successful reply, or turns a failed one into ErrTaskFailed.
func store[T numeric.Element](r reply[T], data []T) error {
	if r.err != nil {
		return fmt.Errorf("%w: cell %d: %w", ErrTaskFailed, r.idx, r.err)
	}
	data[r.idx] = r.value

	return nil
}
