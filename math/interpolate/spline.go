package interpolate

// splineCoeff holds the polynomial a*dx^3 + b*dx^2 + c*dx + d for a single
// interval, where dx is measured from the interval's left knot.
type splineCoeff struct {
	a, b, c, d float64
}

func (co *splineCoeff) eval(dx float64) float64 {
	return co.d + dx*(co.c+dx*(co.b+dx*co.a))
}

func (co *splineCoeff) diff(dx float64, order int) float64 {
	switch order {
	case 0:
		return co.eval(dx)
	case 1:
		return 3*co.a*dx*dx + 2*co.b*dx + co.c
	case 2:
		return 6*co.a*dx + 2*co.b
	case 3:
		return 6 * co.a
	default:
		return 0
	}
}

// integ integrates the polynomial from dx0 to dx1.
func (co *splineCoeff) integ(dx0, dx1 float64) float64 {
	prim := func(t float64) float64 {
		return t * (co.d + t*(co.c/2+t*(co.b/3+t*co.a/4)))
	}
	return prim(dx1) - prim(dx0)
}

// piecewise is a table of per-interval cubics. All of the interpolators in
// this package are piecewise and only differ in how they compute coeffs.
type piecewise struct {
	knots
	ys     []float64
	coeffs []splineCoeff
}

// Eval computes the value of the interpolator at the given point.
func (pw *piecewise) Eval(x float64) float64 { return pw.EvalAccel(x, nil) }

// EvalAccel computes the value of the interpolator at the given point, using
// acc to cache the interval lookup.
func (pw *piecewise) EvalAccel(x float64, acc *Accel) float64 {
	i := pw.find(x, acc)
	if x == pw.xs[i+1] {
		return pw.ys[i+1]
	}
	return pw.coeffs[i].eval(x - pw.xs[i])
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (pw *piecewise) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	acc := NewAccel()
	for i, x := range xs {
		out[0][i] = pw.EvalAccel(x, acc)
	}
	return out[0]
}

// Diff computes the derivative of the interpolator at the given point to the
// specified order. Orders above three are zero.
func (pw *piecewise) Diff(x float64, order int) float64 {
	i := pw.find(x, nil)
	return pw.coeffs[i].diff(x-pw.xs[i], order)
}

// Integrate computes the integral of the interpolator from lo to hi. Limits
// outside the domain integrate the extrapolated boundary polynomials.
func (pw *piecewise) Integrate(lo, hi float64) float64 {
	if lo > hi {
		return -pw.Integrate(hi, lo)
	}

	ilo, ihi := pw.find(lo, nil), pw.find(hi, nil)
	if ilo == ihi {
		return pw.coeffs[ilo].integ(lo-pw.xs[ilo], hi-pw.xs[ilo])
	}

	sum := pw.coeffs[ilo].integ(lo-pw.xs[ilo], pw.xs[ilo+1]-pw.xs[ilo])
	for i := ilo + 1; i < ihi; i++ {
		sum += pw.coeffs[i].integ(0, pw.xs[i+1]-pw.xs[i])
	}
	return sum + pw.coeffs[ihi].integ(0, hi-pw.xs[ihi])
}

// Spline represents a 1D natural cubic spline which can be used to
// interpolate between points. Unlike Steffen, Spline has a continuous second
// derivative and may overshoot between monotonic points.
type Spline struct {
	piecewise
	y2s []float64
}

// NewSpline creates a spline based off a table of x and y values. The x values
// must be strictly increasing and there must be at least three of them.
func NewSpline(xs, ys []float64) (*Spline, error) {
	if err := checkTable("NewSpline", xs, ys, 3); err != nil {
		return nil, err
	}

	sp := &Spline{}
	xs, ys = copyTable(xs, ys)
	sp.init(xs)
	sp.ys = ys
	sp.y2s = make([]float64, len(xs))
	sp.coeffs = make([]splineCoeff, len(xs)-1)

	sp.calcY2s()
	sp.calcCoeffs()
	return sp, nil
}

// calcY2s computes the second derivative at every point in the table.
func (sp *Spline) calcY2s() {
	n := len(sp.xs)
	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)

	// The boundaries are set to zero.
	sp.y2s[0], sp.y2s[n-1] = 0, 0

	xs, ys := sp.xs, sp.ys
	for i := range rs {
		// j indexes into xs and ys.
		j := i + 1

		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = ((ys[j+1] - ys[j]) / (xs[j+1] - xs[j])) -
			((ys[j] - ys[j-1]) / (xs[j] - xs[j-1]))
	}

	triDiagAt(as, bs, cs, rs, sp.y2s[1:n-1])
}

func (sp *Spline) calcCoeffs() {
	coeffs, xs, ys, y2s := sp.coeffs, sp.xs, sp.ys, sp.y2s
	for i := range coeffs {
		h := xs[i+1] - xs[i]
		coeffs[i].a = (y2s[i+1] - y2s[i]) / (6 * h)
		coeffs[i].b = y2s[i] / 2
		coeffs[i].c = (ys[i+1]-ys[i])/h - h*(2*y2s[i]+y2s[i+1])/6
		coeffs[i].d = ys[i]
	}
}

// triDiagAt solves the tridiagonal system with sub-diagonal as, diagonal bs,
// super-diagonal cs and right hand side rs, and writes the solution to out.
// as[0] and cs[len(cs)-1] are not read. The system must be diagonally
// dominant.
func triDiagAt(as, bs, cs, rs, out []float64) {
	n := len(bs)
	if n == 0 {
		return
	}

	cp, dp := make([]float64, n), make([]float64, n)
	cp[0], dp[0] = cs[0]/bs[0], rs[0]/bs[0]
	for i := 1; i < n; i++ {
		m := bs[i] - as[i]*cp[i-1]
		cp[i] = cs[i] / m
		dp[i] = (rs[i] - as[i]*dp[i-1]) / m
	}

	out[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		out[i] = dp[i] - cp[i]*out[i+1]
	}
}
