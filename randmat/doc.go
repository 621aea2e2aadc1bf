// SPDX-License-Identifier: MIT

// Package randmat fills matrices with uniformly distributed small integers.
//
// Every cell of an R×C matrix receives an independent draw from the closed
// range [lo, hi] (default [1, 5]) stored as float64.
//
// Seeding:
//   - By default the seed is taken from the wall clock when the generator is
//     configured, so two runs differ. Runs started within the same clock tick
//     may collide; that is accepted.
//   - WithSeed makes the output reproducible. The result depends only on the
//     seed and the shape, never on the number of workers: each row draws from
//     its own stream derived from the seed and the row index.
//
// Rows are filled in parallel via package parallel.
package randmat
