package interpolate

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	xs[n-1] = hi
	return xs
}

func TestSteffenSquares(t *testing.T) {
	sp, err := NewSteffen([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9})
	require.NoError(t, err)

	table := []struct {
		x, y float64
	}{
		{0, 0}, {0.5, 0.375}, {1, 1}, {1.5, 2.25},
		{2, 4}, {2.5, 6.375}, {3, 9},
	}
	for _, test := range table {
		assert.InDelta(t, test.y, sp.Eval(test.x), 1e-12, "x = %g", test.x)
	}

	assert.Equal(t, 0.0, sp.Eval(0), "left boundary")
	assert.Equal(t, 9.0, sp.Eval(3), "right boundary")

	assert.Equal(t, 1.0, sp.YPrime(0))
	assert.Equal(t, 2.0, sp.YPrime(1))
	assert.Equal(t, 4.0, sp.YPrime(2))
	assert.Equal(t, 5.0, sp.YPrime(3))
}

func TestSteffenDiffIntegrate(t *testing.T) {
	sp, err := NewSteffen([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9})
	require.NoError(t, err)

	assert.InDelta(t, 2.25, sp.Diff(1.5, 0), 1e-12)
	assert.InDelta(t, 3.0, sp.Diff(1.5, 1), 1e-12)
	assert.InDelta(t, 2.0, sp.Diff(1.5, 2), 1e-12)
	assert.InDelta(t, 0.0, sp.Diff(1.5, 3), 1e-12)
	assert.Equal(t, 0.0, sp.Diff(1.5, 4))

	assert.InDelta(t, 55.0/6, sp.Integrate(0, 3), 1e-12)
	assert.InDelta(t, -55.0/6, sp.Integrate(3, 0), 1e-12)
	assert.InDelta(t, 0.0, sp.Integrate(1.2, 1.2), 1e-12)
	assert.InDelta(t,
		sp.Integrate(0, 3),
		sp.Integrate(0, 0.7)+sp.Integrate(0.7, 2.2)+sp.Integrate(2.2, 3),
		1e-12,
	)
}

func TestSteffenTwoPointsIsLinear(t *testing.T) {
	sp, err := NewSteffen([]float64{1, 3}, []float64{2, 6})
	require.NoError(t, err)

	for _, x := range linspace(1, 3, 21) {
		assert.InDelta(t, 2*x, sp.Eval(x), 1e-12, "x = %g", x)
	}
}

func TestSteffenPassesThroughPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	xs, ys := make([]float64, 50), make([]float64, 50)
	x := 0.0
	for i := range xs {
		x += 0.01 + rng.Float64()
		xs[i], ys[i] = x, rng.NormFloat64()
	}

	sp, err := NewSteffen(xs, ys)
	require.NoError(t, err)
	acc := NewAccel()
	for i := range xs {
		assert.Equal(t, ys[i], sp.Eval(xs[i]), "point %d", i)
		assert.Equal(t, ys[i], sp.EvalAccel(xs[i], acc), "accelerated point %d", i)
	}
}

func TestSteffenMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 3 + rng.Intn(20)
		xs, ys := make([]float64, n), make([]float64, n)
		x, y := 0.0, 0.0
		for i := range xs {
			x += 0.05 + rng.ExpFloat64()
			y += rng.ExpFloat64() * rng.ExpFloat64()
			xs[i], ys[i] = x, y
		}

		sp, err := NewSteffen(xs, ys)
		require.NoError(t, err)

		vals := sp.EvalAll(linspace(xs[0], xs[n-1], 2000))
		for i := 1; i < len(vals); i++ {
			if vals[i] < vals[i-1]-1e-9*(1+math.Abs(vals[i-1])) {
				t.Fatalf("%d) Steffen not monotonic: f = %g then %g.",
					trial, vals[i-1], vals[i])
			}
		}
	}
}

func TestSteffenNoOvershoot(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := []float64{0, 0, 0, 1, 1, 1}
	grid := linspace(0, 5, 501)

	st, err := NewSteffen(xs, ys)
	require.NoError(t, err)
	for _, y := range st.EvalAll(grid) {
		assert.True(t, y >= 0 && y <= 1, "Steffen value %g outside [0, 1]", y)
	}

	sp, err := NewSpline(xs, ys)
	require.NoError(t, err)
	overshoot := false
	for _, y := range sp.EvalAll(grid) {
		if y < 0 || y > 1 {
			overshoot = true
		}
	}
	assert.True(t, overshoot, "natural spline expected to overshoot a step")
}

func TestSteffenExtrapolates(t *testing.T) {
	sp, err := NewSteffen([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9})
	require.NoError(t, err)

	// Boundary cubics are continued outside the table: (a, b, c, d) is
	// (1, -1, 1, 0) on the first interval and (-1, 2, 4, 4) on the last.
	assert.InDelta(t, -0.875, sp.Eval(-0.5), 1e-12)
	assert.InDelta(t, 11.125, sp.Eval(3.5), 1e-12)
	assert.InDelta(t, -0.875, sp.EvalAccel(-0.5, NewAccel()), 1e-12)
	assert.InDelta(t, 11.125, sp.EvalAccel(3.5, NewAccel()), 1e-12)
}

func TestSteffenCopiesTable(t *testing.T) {
	xs, ys := []float64{0, 1, 2}, []float64{0, 1, 0}
	sp, err := NewSteffen(xs, ys)
	require.NoError(t, err)

	ys[1] = 100
	assert.Equal(t, 1.0, sp.Eval(1))
}

func TestNewSteffenErrors(t *testing.T) {
	nan := math.NaN()
	table := []struct {
		xs, ys []float64
		err    error
	}{
		{[]float64{0, 1}, []float64{0}, ErrLength},
		{[]float64{0}, []float64{0}, ErrSampleSize},
		{nil, nil, ErrSampleSize},
		{[]float64{0, 2, 1}, []float64{0, 1, 2}, ErrNonMonotonic},
		{[]float64{0, 1, 1}, []float64{0, 1, 2}, ErrNonMonotonic},
		{[]float64{2, 1, 0}, []float64{0, 1, 2}, ErrNonMonotonic},
		{[]float64{0, nan, 2}, []float64{0, 1, 2}, ErrNotFinite},
		{[]float64{0, 1, 2}, []float64{0, math.Inf(1), 2}, ErrNotFinite},
	}

	for i, test := range table {
		_, err := NewSteffen(test.xs, test.ys)
		if !errors.Is(err, test.err) {
			t.Errorf("%d) Expected error %v, got %v.", i+1, test.err, err)
		}
	}
}

func BenchmarkNewSteffen1000(b *testing.B) {
	xs := linspace(0, 10, 1000)
	ys := make([]float64, len(xs))
	for i := range xs {
		ys[i] = math.Sin(xs[i])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewSteffen(xs, ys)
	}
}

func BenchmarkSteffenEvalAll1000(b *testing.B) {
	xs := linspace(0, 10, 1000)
	ys := make([]float64, len(xs))
	for i := range xs {
		ys[i] = math.Sin(xs[i])
	}
	sp, _ := NewSteffen(xs, ys)
	qs, out := linspace(0, 10, 1000), make([]float64, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sp.EvalAll(qs, out)
	}
}
