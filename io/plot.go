package io

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/aclements/go-moremath/vec"
	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/steffen"
)

// PlotGrid returns the points at which PlotInterpolant samples an interpolant
// with the given domain. nil is returned if points < 2.
func PlotGrid(lo, hi float64, points int) []float64 {
	if points < 2 {
		return nil
	}
	xs := vec.Linspace(lo, hi, points)
	// Rounding can push the last point outside the domain.
	xs[0], xs[len(xs)-1] = lo, hi
	return xs
}

// PlotInterpolant writes a matplotlib figure of the samples (xs, ys) and the
// interpolant evaluated at the given number of points to fname. Anything
// python prints is sent to stderr.
func PlotInterpolant(
	fname string, xs, ys []float64, it *steffen.Interpolant, points int,
) error {
	if points < 2 {
		return fmt.Errorf("plotting %s: need at least 2 points, got %d", fname, points)
	}
	if _, err := exec.LookPath("python"); err != nil {
		return fmt.Errorf("plotting %s: %w", fname, err)
	}

	lo, hi := it.Domain()
	gridXs := PlotGrid(lo, hi, points)
	gridYs := make([]float64, len(gridXs))
	if err := it.EvalAll(gridXs, gridYs); err != nil {
		return err
	}

	// A figure left over from an earlier run would hide a failed one.
	if err := os.Remove(fname); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("plotting %s: %w", fname, err)
	}

	plt.Reset()
	plt.Figure()
	plt.Plot(gridXs, gridYs, "r", plt.LW(3))
	plt.Plot(xs, ys, "ok")
	plt.Title(fmt.Sprintf("%s interpolation of %d points", it.Method(), len(xs)))
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$y$`, plt.FontSize(16))
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)

	// Results may be going to stdout.
	stdout := os.Stdout
	os.Stdout = os.Stderr
	plt.Execute()
	os.Stdout = stdout

	if _, err := os.Stat(fname); err != nil {
		return fmt.Errorf("plotting %s: python did not write a figure: %w", fname, err)
	}
	return nil
}
