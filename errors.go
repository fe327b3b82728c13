package steffen

import (
	"errors"
	"fmt"

	"github.com/phil-mansfield/steffen/math/interpolate"
)

var (
	ErrLength       = interpolate.ErrLength
	ErrSampleSize   = interpolate.ErrSampleSize
	ErrNonMonotonic = interpolate.ErrNonMonotonic
	ErrNotFinite    = interpolate.ErrNotFinite

	ErrOutOfDomain = errors.New("query outside interpolation domain")
	ErrAllocation  = errors.New("interpolant construction failed")
	ErrPolicy      = errors.New("unknown out-of-domain policy")
	ErrMethod      = errors.New("unknown interpolation method")
)

// DomainError is returned for a query which lies outside [Lo, Hi] under the
// Strict policy, or which is NaN under any policy.
type DomainError struct {
	// Index is the position of the query in the batch.
	Index  int
	X      float64
	Lo, Hi float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf(
		"query %d, x = %g, outside domain [%g, %g]", e.Index, e.X, e.Lo, e.Hi,
	)
}

func (e *DomainError) Unwrap() error { return ErrOutOfDomain }
