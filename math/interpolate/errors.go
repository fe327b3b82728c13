package interpolate

import "errors"

var (
	ErrLength       = errors.New("mismatched lengths")
	ErrSampleSize   = errors.New("too few sample points")
	ErrNonMonotonic = errors.New("x values not strictly increasing")
	ErrNotFinite    = errors.New("non-finite sample value")
)
