/*package steffen evaluates monotonicity-preserving cubic (Steffen) splines
through a table of sample points.

Interpolate and InterpolateSingleValue fit a fresh interpolant on every call
and drop it before returning, so they are safe to call from any number of
goroutines. Fit exposes the interpolant for callers which want to evaluate the
same table many times.
*/
package steffen

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/phil-mansfield/steffen/math/interpolate"
)

// Interpolate fits an interpolant to the samples (xs, ys) and evaluates it at
// every value in queries, writing the result for queries[i] to out[i].
// len(out) must equal len(queries).
//
// Every query is checked against the out-of-domain policy before anything is
// written, so out is left untouched when an error is returned.
func Interpolate(xs, ys, queries, out []float64, opts ...Option) error {
	it, err := Fit(xs, ys, opts...)
	if err != nil {
		return err
	}
	return it.EvalAll(queries, out)
}

// InterpolateSingleValue fits an interpolant to the samples (xs, ys) and
// evaluates it at q. It is Interpolate with a single query. NaN is returned
// alongside any error.
func InterpolateSingleValue(
	xs, ys []float64, q float64, opts ...Option,
) (float64, error) {
	var out [1]float64
	if err := Interpolate(xs, ys, []float64{q}, out[:], opts...); err != nil {
		return math.NaN(), err
	}
	return out[0], nil
}

type fitFunc func(xs, ys []float64) (interpolate.Interpolator, error)

var fitters = map[Method]fitFunc{
	MethodSteffen: func(xs, ys []float64) (interpolate.Interpolator, error) {
		return interpolate.NewSteffen(xs, ys)
	},
	MethodCubic: func(xs, ys []float64) (interpolate.Interpolator, error) {
		return interpolate.NewSpline(xs, ys)
	},
	MethodLinear: func(xs, ys []float64) (interpolate.Interpolator, error) {
		return interpolate.NewLinear(xs, ys)
	},
}

// Interpolant is a fitted table together with its out-of-domain policy. It is
// never modified after Fit returns and may be shared between goroutines.
type Interpolant struct {
	intr   interpolate.Interpolator
	lo, hi float64
	policy Policy
	method Method
}

// Fit fits an interpolant to the samples (xs, ys). The samples are copied.
func Fit(xs, ys []float64, opts ...Option) (it *Interpolant, err error) {
	o := optionNew(opts...)
	if _, ok := policyNames[o.policy]; !ok {
		return nil, fmt.Errorf("steffen: %v: %w", o.policy, ErrPolicy)
	}

	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			it, err = nil, fmt.Errorf(
				"steffen: fitting %d samples: %v: %w", len(xs), rerr, ErrAllocation,
			)
		}
	}()

	fit, ok := fitters[o.method]
	if !ok {
		return nil, fmt.Errorf("steffen: %v: %w", o.method, ErrMethod)
	}
	intr, err := fit(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("steffen: %w", err)
	}

	it = &Interpolant{intr: intr, policy: o.policy, method: o.method}
	it.lo, it.hi = intr.Domain()
	return it, nil
}

// Domain returns the smallest and largest sample abscissas.
func (it *Interpolant) Domain() (lo, hi float64) { return it.lo, it.hi }

// Policy returns the interpolant's out-of-domain policy.
func (it *Interpolant) Policy() Policy { return it.policy }

// Method returns the interpolation method the interpolant was fit with.
func (it *Interpolant) Method() Method { return it.method }

// Eval evaluates the interpolant at q.
func (it *Interpolant) Eval(q float64) (float64, error) {
	x, err := it.abscissa(0, q)
	if err != nil {
		return math.NaN(), err
	}
	return it.intr.Eval(x), nil
}

// EvalAll evaluates the interpolant at every value in queries and writes the
// results to out, which must have the same length. Queries may be in any
// order. Nothing is written if an error is returned.
func (it *Interpolant) EvalAll(queries, out []float64) error {
	if err := it.check(queries, out); err != nil {
		return err
	}
	it.evalRange(queries, out, 0)
	return nil
}

// EvalAllParallel is EvalAll split across the given number of goroutines.
// Each goroutine uses its own interval cache.
func (it *Interpolant) EvalAllParallel(queries, out []float64, workers int) error {
	if err := it.check(queries, out); err != nil {
		return err
	}
	if workers <= 1 || len(queries) < 2*workers {
		it.evalRange(queries, out, 0)
		return nil
	}

	chunk := (len(queries) + workers - 1) / workers
	wg := sync.WaitGroup{}
	for start := 0; start < len(queries); start += chunk {
		end := start + chunk
		if end > len(queries) {
			end = len(queries)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			it.evalRange(queries[start:end], out[start:end], start)
		}(start, end)
	}
	wg.Wait()

	return nil
}

// check validates the output buffer and every query without writing.
func (it *Interpolant) check(queries, out []float64) error {
	if len(queries) != len(out) {
		return fmt.Errorf(
			"steffen: %d queries but output buffer has length %d: %w",
			len(queries), len(out), ErrLength,
		)
	}
	for i, q := range queries {
		if _, err := it.abscissa(i, q); err != nil {
			return err
		}
	}
	return nil
}

// evalRange evaluates a block of queries which have already passed check.
// offset is the index of queries[0] in the full batch.
func (it *Interpolant) evalRange(queries, out []float64, offset int) {
	acc := interpolate.NewAccel()
	for i, q := range queries {
		x, _ := it.abscissa(offset+i, q)
		out[i] = it.intr.EvalAccel(x, acc)
	}
}

// abscissa applies the out-of-domain policy to the i-th query and returns the
// point the interpolator should be evaluated at.
func (it *Interpolant) abscissa(i int, q float64) (float64, error) {
	if q >= it.lo && q <= it.hi {
		return q, nil
	}

	switch {
	case math.IsNaN(q):
	case it.policy == Clamp && q < it.lo:
		return it.lo, nil
	case it.policy == Clamp:
		return it.hi, nil
	case it.policy == Extrapolate:
		return q, nil
	}
	return 0, &DomainError{Index: i, X: q, Lo: it.lo, Hi: it.hi}
}
