// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/matavg/average"
	"github.com/katalvlaran/matavg/randmat"
)

// Compile-time matrix dimensions.
const (
	DefaultRows = 1000
	DefaultCols = 1000
)

const opRun = "runner.Run"

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("runner: invalid config")

// Config describes one run.
type Config struct {
	Rows, Cols int
	Print      bool  // print the matrix and both mean vectors
	Workers    int   // pool size per orientation; 0 = hardware concurrency
	Seed       int64 // 0 = seed from the wall clock
}

// DefaultConfig returns the reference run: 1000×1000, output suppressed.
func DefaultConfig() Config {
	return Config{Rows: DefaultRows, Cols: DefaultCols}
}

// Validate rejects negative dimensions or worker counts.
func (c Config) Validate() error {
	if c.Rows < 0 || c.Cols < 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}

	return nil
}

// Result is what survives a run. Its slices are copies, valid after the
// workspace has been released.
type Result struct {
	Duration time.Duration // wall-clock time of the concurrent phase
	RowMeans []float64
	ColMeans []float64
}

// newWorkspace is swapped by tests to observe the workspace lifecycle.
var newWorkspace = NewWorkspace

// Run performs one complete run and writes the report to w:
// allocate → generate → [print matrix] → time concurrent row/column means →
// print duration → [print means] → release.
// The workspace is released exactly once on every return path.
// Stage 1 (Validate): reject a bad Config before allocating anything.
// Stage 2 (Prepare): allocate the workspace and defer its release.
// Stage 3 (Execute): generate, then time the concurrent row/column phase.
// Stage 4 (Finalize): report and copy results out of the workspace.
func Run(ctx context.Context, cfg Config, w io.Writer) (res Result, err error) {
	if err = cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opRun, err)
	}

	// Allocate; from here on every return goes through the deferred release
	ws, err := newWorkspace(cfg.Rows, cfg.Cols)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opRun, err)
	}
	defer func() {
		if rerr := ws.Release(); rerr != nil && err == nil {
			err = fmt.Errorf("%s: %w", opRun, rerr)
		}
	}()

	// Generate the matrix
	genOpts := []randmat.Option{randmat.WithWorkers(cfg.Workers)}
	if cfg.Seed != 0 {
		genOpts = append(genOpts, randmat.WithSeed(cfg.Seed))
	}
	if err = randmat.Fill(ws.Matrix, genOpts...); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opRun, err)
	}
	if cfg.Print {
		if err = PrintMatrix(w, ws.Matrix); err != nil {
			return Result{}, fmt.Errorf("%s: %w", opRun, err)
		}
	}

	// Concurrent phase: only this is timed
	start := time.Now()
	err = average.Pair(ctx, ws.Matrix, ws.RowMeans, ws.ColMeans, average.WithWorkers(cfg.Workers))
	res.Duration = time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opRun, err)
	}

	// Report
	if err = PrintDuration(w, res.Duration); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opRun, err)
	}
	if cfg.Print {
		if err = PrintMeans(w, average.ByRows, ws.RowMeans); err != nil {
			return Result{}, fmt.Errorf("%s: %w", opRun, err)
		}
		if err = PrintMeans(w, average.ByCols, ws.ColMeans); err != nil {
			return Result{}, fmt.Errorf("%s: %w", opRun, err)
		}
	}

	res.RowMeans = append([]float64(nil), ws.RowMeans...)
	res.ColMeans = append([]float64(nil), ws.ColMeans...)

	return res, nil
}
