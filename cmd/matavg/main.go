// Command matavg generates a 1000×1000 matrix of random integers in [1,5],
// computes the mean of every row and every column concurrently, and prints
// how long the concurrent phase took.
//
// Usage:
//
//	matavg [-print] [-workers=N] [-seed=S]
//
// Exit status is 0 on success and 1 on any error.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/matavg/runner"
)

const (
	okStatus    = 0
	errorStatus = 1
)

var (
	printOutput = flag.Bool("print", false, "print the matrix and the row/column means")
	workers     = flag.Int("workers", 0, "workers per orientation (0 = hardware concurrency)")
	seed        = flag.Int64("seed", 0, "random seed (0 = wall clock)")
)

func main() {
	flag.Parse()

	cfg := runner.DefaultConfig()
	cfg.Print = *printOutput
	cfg.Workers = *workers
	cfg.Seed = *seed

	os.Exit(run(context.Background(), cfg, os.Stdout))
}

// run is the single catch-all: any error or panic from the run is logged to
// out and turned into errorStatus.
func run(ctx context.Context, cfg runner.Config, out io.Writer) (status int) {
	logger := log.New(out, "matavg: ", 0)
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("Error occurred! %v", r)
			status = errorStatus
		}
	}()

	if _, err := runner.Run(ctx, cfg, out); err != nil {
		logger.Printf("Error occurred! %v", err)
		return errorStatus
	}

	return okStatus
}
