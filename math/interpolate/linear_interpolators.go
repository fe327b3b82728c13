package interpolate

// Linear is a linear interpolator.
type Linear struct {
	piecewise
}

// NewLinear creates a linear interpolator for a sequence of strictly
// increasing points, xs, which take on the values given by vals.
//
// Lookups will occur in O(log |xs|), possibly faster depending on the access
// pattern and data layout.
func NewLinear(xs, vals []float64) (*Linear, error) {
	if err := checkTable("NewLinear", xs, vals, 2); err != nil {
		return nil, err
	}

	lin := &Linear{}
	xs, vals = copyTable(xs, vals)
	lin.init(xs)
	lin.ys = vals
	lin.coeffs = make([]splineCoeff, len(xs)-1)
	for i := range lin.coeffs {
		lin.coeffs[i].c = (vals[i+1] - vals[i]) / (xs[i+1] - xs[i])
		lin.coeffs[i].d = vals[i]
	}
	return lin, nil
}

// NewUniformLinear creates a linear interplator over a uniformly spaced
// sequence of x values starting at x0 and separated by dx, whose values are
// given by vals.
//
// Lookups will be O(1).
func NewUniformLinear(x0, dx float64, vals []float64) (*Linear, error) {
	xs := make([]float64, len(vals))
	for i := range xs {
		xs[i] = x0 + float64(i)*dx
	}
	return NewLinear(xs, vals)
}
