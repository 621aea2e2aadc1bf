// SPDX-License-Identifier: MIT
// Package: matavg/randmat
//
// options.go: functional options for the generator.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Fill/New themselves never panic.
//   • Later options override earlier ones.

package randmat

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/matavg/parallel"
)

// Default closed value range [1, 5].
const (
	DefaultLow  = 1
	DefaultHigh = 5
)

// Option customizes a generator run.
type Option func(*config)

// config is the single source of truth for generator knobs.
type config struct {
	seed    int64
	lo, hi  int
	workers int
}

// newConfig resolves defaults and applies opts in order.
// The default seed is read from the wall clock here, once per call.
// Options only assign; the same opts may be applied from several goroutines.
func newConfig(opts ...Option) config {
	cfg := config{
		seed:    time.Now().UnixNano(),
		lo:      DefaultLow,
		hi:      DefaultHigh,
		workers: parallel.DefaultWorkers(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers == 0 {
		cfg.workers = parallel.DefaultWorkers()
	}

	return cfg
}

// WithSeed fixes the seed for reproducible output.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithRand takes the seed from r (one Int63 draw, made here). Panics on nil.
// r is not retained, so the option can be reused safely.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("randmat: WithRand(nil)")
	}
	seed := r.Int63()
	return func(c *config) {
		c.seed = seed
	}
}

// WithRange sets the closed integer range [lo, hi]. Panics if lo > hi.
func WithRange(lo, hi int) Option {
	if lo > hi {
		panic("randmat: WithRange(lo>hi)")
	}
	return func(c *config) {
		c.lo, c.hi = lo, hi
	}
}

// WithWorkers sets the number of goroutines filling rows.
// Panics if n < 0; n == 0 means parallel.DefaultWorkers().
func WithWorkers(n int) Option {
	if n < 0 {
		panic("randmat: WithWorkers(n<0)")
	}
	return func(c *config) {
		c.workers = n
	}
}
