// SPDX-License-Identifier: MIT

package average

import "github.com/katalvlaran/matavg/parallel"

// Option customizes a reduction.
type Option func(*config)

type config struct {
	workers int
}

// newConfig applies opts over the defaults (one worker per available CPU).
// Options only assign; the same opts may be applied from several goroutines.
func newConfig(opts ...Option) config {
	cfg := config{workers: parallel.DefaultWorkers()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers == 0 {
		cfg.workers = parallel.DefaultWorkers()
	}

	return cfg
}

// WithWorkers sets the pool size for the outer loop.
// 1 runs the reduction sequentially on the caller's goroutine;
// 0 restores the default. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("average: WithWorkers(n<0)")
	}
	return func(c *config) {
		c.workers = n
	}
}
