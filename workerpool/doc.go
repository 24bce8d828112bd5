// SPDX-License-Identifier: MIT

// Package workerpool runs tasks on a fixed set of long-lived workers.
//
// Each worker owns a private, unbounded FIFO queue. Submit routes a task by
// its caller-supplied index with a static round-robin (idx % N), so routing
// is deterministic and independent of load. Workers block while their queue
// is empty and exit once the pool is stopped and their queue has drained.
//
// Lifecycle:
//
//	p, err := workerpool.New(workerpool.WithWorkers(4))
//	if err != nil { ... }
//	if err := p.Start(); err != nil { ... }
//	defer p.Stop()
//	_ = p.Submit(idx, task)
//
// A Pool can be reused across any number of jobs between Start and Stop.
//
// Failure policy:
//   - A task that panics is recovered; the worker keeps running and the task
//     is told through Task.Fail with an error wrapping ErrTaskPanicked.
//   - Submit after Stop returns ErrPoolClosed; the task is not run.
//   - There are no retries.
package workerpool
