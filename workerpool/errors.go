// SPDX-License-Identifier: MIT

package workerpool

import "errors"

var (
	// ErrInvalidWorkers is returned by New when the worker count is not positive.
	ErrInvalidWorkers = errors.New("workerpool: worker count must be > 0")

	// ErrNotStarted is returned by Submit before Start.
	ErrNotStarted = errors.New("workerpool: pool not started")

	// ErrAlreadyStarted is returned by a second Start.
	ErrAlreadyStarted = errors.New("workerpool: pool already started")

	// ErrPoolClosed is returned when work is offered to a stopped pool.
	ErrPoolClosed = errors.New("workerpool: pool closed")

	// ErrTaskPanicked is delivered to Task.Fail when Run panics.
	ErrTaskPanicked = errors.New("workerpool: task panicked")
)
