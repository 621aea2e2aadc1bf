// SPDX-License-Identifier: MIT

package runner

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/matavg/average"
	"github.com/katalvlaran/matavg/matrix"
)

const opPrintMeans = "runner.PrintMeans"

// PrintMatrix writes the generated matrix, one row per line.
func PrintMatrix(w io.Writer, m *matrix.Dense) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Generated matrix:")
	for i := 0; i < m.Rows(); i++ {
		for _, v := range m.Row(i) {
			fmt.Fprintf(bw, "%f ", v)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// PrintMeans writes one labelled line per mean. An orientation outside
// {ByRows, ByCols} returns *average.OrientationError and writes nothing.
func PrintMeans(w io.Writer, orient average.Orientation, means []float64) error {
	var header, label string
	switch orient {
	case average.ByRows:
		header, label = "Average values in rows:", "Row"
	case average.ByCols:
		header, label = "Average values in columns:", "Column"
	default:
		return &average.OrientationError{Op: opPrintMeans, Orientation: orient}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\n%s\n", header)
	for i, v := range means {
		fmt.Fprintf(bw, "%s %d: %f\n", label, i, v)
	}

	return bw.Flush()
}

// PrintDuration writes the elapsed time of the concurrent phase in seconds.
func PrintDuration(w io.Writer, d time.Duration) error {
	_, err := fmt.Fprintf(w, "\nDuration is: %f seconds\n", d.Seconds())
	return err
}
