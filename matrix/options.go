// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/matmul/workerpool"
	"go.uber.org/zap"
)

// CollectMode selects how the collector gathers task replies.
type CollectMode int

const (
	// CollectOrdered awaits each task's private reply channel in dispatch
	// order. A slow early task stalls collection of later cells.
	CollectOrdered CollectMode = iota

	// CollectUnordered drains a single completion channel shared by all tasks
	// of one product and scatters values by their embedded index.
	CollectUnordered
)

// String returns the mode name.
func (c CollectMode) String() string {
	switch c {
	case CollectOrdered:
		return "ordered"
	case CollectUnordered:
		return "unordered"
	default:
		return fmt.Sprintf("CollectMode(%d)", int(c))
	}
}

// Defaults for Multiply / MultiplyContext.
const (
	// DefaultWorkers is the size of the per-call pool when no pool is injected.
	DefaultWorkers = workerpool.DefaultWorkers

	// DefaultCollectMode matches the head-of-line collector.
	DefaultCollectMode = CollectOrdered
)

// Options holds the resolved configuration of one multiplication.
// Fields are unexported; use the WithX constructors.
type Options struct {
	pool    *workerpool.Pool
	workers int
	logger  *zap.Logger
	collect CollectMode
}

// Option configures a multiplication.
type Option func(*Options)

// WithPool runs the product on an existing, started pool. The pool is not
// stopped afterwards, so repeated products amortise worker start-up.
// WithWorkers is ignored when a pool is given.
func WithPool(p *workerpool.Pool) Option {
	return func(o *Options) { o.pool = p }
}

// WithWorkers sets the size of the per-call pool.
// Panics if n <= 0 (programmer error).
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("matrix: WithWorkers(%d): worker count must be > 0", n))
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger sets the logger for dispatch events and for the per-call pool.
// nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCollector selects the collection mode.
// Panics on an unknown mode (programmer error).
func WithCollector(mode CollectMode) Option {
	if mode != CollectOrdered && mode != CollectUnordered {
		panic(fmt.Sprintf("matrix: WithCollector(%d): unknown mode", int(mode)))
	}

	return func(o *Options) { o.collect = mode }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		logger:  zap.NewNop(),
		collect: DefaultCollectMode,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
