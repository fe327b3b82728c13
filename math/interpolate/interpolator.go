/*package interpolate implements one dimensional piecewise-cubic interpolators
over tables of strictly increasing x values.

Fitted interpolators are never modified after construction and may be shared
between goroutines. The interval cache used to speed up runs of nearby
evaluations lives in a separate Accel, which must not be shared.
*/
package interpolate

import (
	"fmt"
	"math"
)

// Interpolator is a 1D interpolator.
type Interpolator interface {
	// Eval evaluates the interpolator at x. Points outside the domain are
	// extrapolated with the nearest boundary polynomial.
	Eval(x float64) float64
	// EvalAccel evaluates the interpolator at x, using and updating the
	// interval cache in acc. acc may be nil.
	EvalAccel(x float64, acc *Accel) float64
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
	// Domain returns the smallest and largest x values in the table.
	Domain() (lo, hi float64)
}

var (
	_ Interpolator = &Steffen{}
	_ Interpolator = &Spline{}
	_ Interpolator = &Linear{}
)

// checkTable verifies that xs and ys describe a table which a method needing
// at least minLen points can be fit to.
func checkTable(name string, xs, ys []float64, minLen int) error {
	if len(xs) != len(ys) {
		return fmt.Errorf(
			"table given to %s() has len(xs) = %d but len(ys) = %d: %w",
			name, len(xs), len(ys), ErrLength,
		)
	} else if len(xs) < minLen {
		return fmt.Errorf(
			"table given to %s() has length %d, but at least %d points "+
				"are needed: %w", name, len(xs), minLen, ErrSampleSize,
		)
	}

	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			return fmt.Errorf(
				"table given to %s() has (x, y) = (%g, %g) at index %d: %w",
				name, xs[i], ys[i], i, ErrNotFinite,
			)
		}
	}

	for i := 0; i < len(xs)-1; i++ {
		if !(xs[i] < xs[i+1]) {
			return fmt.Errorf(
				"table given to %s() has xs[%d] = %g >= xs[%d] = %g: %w",
				name, i, xs[i], i+1, xs[i+1], ErrNonMonotonic,
			)
		}
	}

	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// copyTable returns copies of xs and ys so that callers are free to modify
// their slices after fitting.
func copyTable(xs, ys []float64) ([]float64, []float64) {
	cxs, cys := make([]float64, len(xs)), make([]float64, len(ys))
	copy(cxs, xs)
	copy(cys, ys)
	return cxs, cys
}
