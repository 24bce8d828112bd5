// SPDX-License-Identifier: MIT

package workerpool

import "go.uber.org/zap"

// DefaultWorkers is the worker count used when WithWorkers is not given.
// It is a fixed constant rather than runtime.NumCPU so routing (idx % N)
// stays identical across machines.
const DefaultWorkers = 4

// Config holds the resolved pool configuration.
type Config struct {
	// Workers is the number of worker goroutines (N).
	Workers int

	// Logger receives lifecycle and failure events. Never nil after New.
	Logger *zap.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Workers: DefaultWorkers,
		Logger:  zap.NewNop(),
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}

	return nil
}

// WithWorkers sets the worker count.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// gatherConfig applies opts over DefaultConfig and validates the result.
func gatherConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg, cfg.Validate()
}
