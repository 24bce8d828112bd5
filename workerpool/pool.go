// SPDX-License-Identifier: MIT

package workerpool

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Task is one unit of work executed by exactly one worker.
type Task interface {
	// Run executes the task to completion.
	Run()

	// Fail is called instead of a normal completion when Run panics.
	Fail(err error)
}

// TaskFunc adapts a plain function to Task. Panics are logged and dropped.
type TaskFunc func()

// Run calls f.
func (f TaskFunc) Run() { f() }

// Fail is a no-op; the worker has already logged the panic.
func (f TaskFunc) Fail(error) {}

type state int32

const (
	stateIdle state = iota
	stateRunning
	stateStopped
)

// Pool is a fixed-size set of workers with per-worker FIFO queues.
// All methods are safe for concurrent use.
type Pool struct {
	cfg    Config
	log    *zap.Logger
	queues []*taskQueue
	stats  []workerStats

	mu    sync.Mutex // guards Start/Stop transitions
	state atomic.Int32
	group *errgroup.Group
}

type workerStats struct {
	executed atomic.Uint64
	panicked atomic.Uint64
}

// Stats is a point-in-time snapshot of per-worker counters.
type Stats struct {
	Executed []uint64 // tasks completed per worker, panics included
	Panicked []uint64 // tasks recovered from a panic per worker
	Pending  []int    // tasks still queued per worker
}

// Total returns the number of executed tasks across all workers.
func (s Stats) Total() uint64 {
	var n uint64
	for _, v := range s.Executed {
		n += v
	}

	return n
}

// New builds a Pool without starting it.
//
// Errors:
//   - ErrInvalidWorkers if the configured worker count is not positive.
func New(opts ...Option) (*Pool, error) {
	cfg, err := gatherConfig(opts...)
	if err != nil {
		return nil, err
	}
	p := &Pool{
		cfg:    cfg,
		log:    cfg.Logger.Named("workerpool"),
		queues: make([]*taskQueue, cfg.Workers),
		stats:  make([]workerStats, cfg.Workers),
	}
	for i := range p.queues {
		p.queues[i] = newTaskQueue()
	}

	return p, nil
}

// Size returns the number of workers.
func (p *Pool) Size() int { return p.cfg.Workers }

// Start launches the workers.
//
// Errors:
//   - ErrAlreadyStarted if the pool is running.
//   - ErrPoolClosed if the pool has been stopped; a stopped pool cannot restart.
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch state(p.state.Load()) {
	case stateRunning:
		return ErrAlreadyStarted
	case stateStopped:
		return ErrPoolClosed
	}

	p.group = new(errgroup.Group)
	for id := range p.queues {
		id := id
		p.group.Go(func() error {
			p.work(id)
			return nil
		})
	}
	p.state.Store(int32(stateRunning))
	p.log.Debug("pool started", zap.Int("workers", p.cfg.Workers))

	return nil
}

// Stop closes every queue, lets each worker drain what was already queued,
// and waits for all workers to exit. Stop is idempotent: every call, including
// concurrent ones, returns only once the workers are gone.
func (p *Pool) Stop() error {
	p.mu.Lock()
	prev := state(p.state.Swap(int32(stateStopped)))
	for _, q := range p.queues {
		q.close()
	}
	g := p.group
	p.mu.Unlock()

	if g == nil {
		return nil // never started
	}
	err := g.Wait()
	if prev == stateRunning {
		p.log.Debug("pool stopped", zap.Uint64("executed", p.Stats().Total()))
	}

	return err
}

// Submit queues task on worker idx % Size().
//
// Errors:
//   - ErrNotStarted before Start.
//   - ErrPoolClosed after Stop.
func (p *Pool) Submit(idx int, task Task) error {
	switch state(p.state.Load()) {
	case stateIdle:
		return ErrNotStarted
	case stateStopped:
		return ErrPoolClosed
	}

	return p.queues[p.route(idx)].push(task)
}

// route maps a task index onto a worker. Negative indexes wrap as well.
func (p *Pool) route(idx int) int {
	w := idx % p.cfg.Workers
	if w < 0 {
		w += p.cfg.Workers
	}

	return w
}

// Stats returns a snapshot of per-worker counters.
func (p *Pool) Stats() Stats {
	s := Stats{
		Executed: make([]uint64, len(p.stats)),
		Panicked: make([]uint64, len(p.stats)),
		Pending:  make([]int, len(p.queues)),
	}
	for i := range p.stats {
		s.Executed[i] = p.stats[i].executed.Load()
		s.Panicked[i] = p.stats[i].panicked.Load()
		s.Pending[i] = p.queues[i].len()
	}

	return s
}

// work is the loop of worker id: pop, run, repeat until the queue is closed
// and drained.
func (p *Pool) work(id int) {
	q := p.queues[id]
	for {
		task, ok := q.pop()
		if !ok {
			return
		}
		p.execute(id, task)
	}
}

// execute runs one task, converting a panic into Task.Fail.
func (p *Pool) execute(id int, task Task) {
	defer p.stats[id].executed.Add(1)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		p.stats[id].panicked.Add(1)
		err := fmt.Errorf("worker %d: %v: %w", id, r, ErrTaskPanicked)
		p.log.Error("task panicked", zap.Int("worker", id), zap.Any("panic", r))
		p.fail(id, task, err)
	}()
	task.Run()
}

// fail reports err to the task; a panicking Fail is logged and dropped so
// the worker survives.
func (p *Pool) fail(id int, task Task, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("task failure hook panicked", zap.Int("worker", id), zap.Any("panic", r))
		}
	}()
	task.Fail(err)
}
