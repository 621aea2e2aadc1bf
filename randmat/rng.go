// SPDX-License-Identifier: MIT

// Package randmat - RNG utilities for the generator.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrix regardless of worker count.
//   - Encapsulation: a single place derives per-row streams.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each row gets its own *rand.Rand
//     created by rowRNG inside the worker that fills it.
package randmat

import "math/rand"

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
// SplitMix64 finalizer: neighbouring row indices produce unrelated streams.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// rowRNG returns the independent stream used for row i.
// Complexity: O(1).
func rowRNG(seed int64, row int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(row))))
}
