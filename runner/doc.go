// SPDX-License-Identifier: MIT

// Package runner drives one benchmark run: allocate, generate, reduce both
// orientations concurrently, time the concurrent phase, report, release.
//
// All storage for a run lives in a single Workspace owned by Run and is
// released exactly once, on every exit path, whether or not anything was
// printed.
package runner
