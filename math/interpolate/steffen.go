package interpolate

import (
	"math"
)

// Steffen is a monotonicity-preserving piecewise cubic interpolator
// (Steffen 1990, A&A 239, 443). The curve never overshoots between two
// neighbouring points: it has local extrema only at points of the table and
// is monotonic wherever the table is. The first derivative is continuous, the
// second is not.
type Steffen struct {
	piecewise
	yPrimes []float64
}

// NewSteffen fits a Steffen interpolator to a table of x and y values. The x
// values must be strictly increasing and there must be at least two of them.
// With exactly two points the interpolator is a straight line.
//
// xs and ys are copied and may be modified afterwards.
func NewSteffen(xs, ys []float64) (*Steffen, error) {
	if err := checkTable("NewSteffen", xs, ys, 2); err != nil {
		return nil, err
	}

	sp := &Steffen{}
	xs, ys = copyTable(xs, ys)
	sp.init(xs)
	sp.ys = ys
	sp.yPrimes = make([]float64, len(xs))
	sp.coeffs = make([]splineCoeff, len(xs)-1)

	sp.calcYPrimes()
	sp.calcCoeffs()
	return sp, nil
}

// YPrime returns the first derivative assigned to the i-th point of the table.
func (sp *Steffen) YPrime(i int) float64 { return sp.yPrimes[i] }

func (sp *Steffen) slope(i int) float64 {
	return (sp.ys[i+1] - sp.ys[i]) / (sp.xs[i+1] - sp.xs[i])
}

func (sp *Steffen) calcYPrimes() {
	n := len(sp.xs)
	xs, yp := sp.xs, sp.yPrimes

	// Boundary derivatives are the slopes of the outer intervals.
	yp[0], yp[n-1] = sp.slope(0), sp.slope(n-2)

	for i := 1; i < n-1; i++ {
		h0, h1 := xs[i]-xs[i-1], xs[i+1]-xs[i]
		s0, s1 := sp.slope(i-1), sp.slope(i)
		p := (s0*h1 + s1*h0) / (h0 + h1)

		yp[i] = (sign(s0) + sign(s1)) *
			math.Min(math.Abs(s0), math.Min(math.Abs(s1), 0.5*math.Abs(p)))
	}
}

func (sp *Steffen) calcCoeffs() {
	coeffs, xs, ys, yp := sp.coeffs, sp.xs, sp.ys, sp.yPrimes
	for i := range coeffs {
		h := xs[i+1] - xs[i]
		s := sp.slope(i)
		coeffs[i].a = (yp[i] + yp[i+1] - 2*s) / (h * h)
		coeffs[i].b = (3*s - 2*yp[i] - yp[i+1]) / h
		coeffs[i].c = yp[i]
		coeffs[i].d = ys[i]
	}
}

// sign returns -1 for negative x and +1 otherwise. Zero counts as positive.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
