// SPDX-License-Identifier: MIT

package workerpool

import (
	"sync"

	"github.com/eapache/queue"
)

// taskQueue is an unbounded FIFO with a blocking pop.
// Pushes never block; pop blocks until an item arrives or the queue is
// closed and empty.
type taskQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  *queue.Queue // ring buffer of Task
	closed bool
}

func newTaskQueue() *taskQueue {
	q := &taskQueue{items: queue.New()}
	q.cond = sync.NewCond(&q.mu)

	return q
}

// push appends t, or returns ErrPoolClosed once close has been called.
func (q *taskQueue) push(t Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrPoolClosed
	}
	q.items.Add(t)
	q.cond.Signal()

	return nil
}

// pop removes the head, blocking while the queue is empty and open.
// ok is false only when the queue is closed and fully drained.
func (q *taskQueue) pop() (t Task, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.items.Length() == 0 && !q.closed {
		q.cond.Wait()
	}
	if q.items.Length() == 0 {
		return nil, false
	}

	return q.items.Remove().(Task), true
}

// close rejects further pushes and wakes the consumer.
func (q *taskQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

func (q *taskQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.items.Length()
}
