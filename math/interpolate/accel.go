package interpolate

// Accel caches the interval used by the most recent evaluation so that runs
// of nearby evaluations can skip the search. An Accel is not safe for
// concurrent use, but the Interpolator it is used with is.
type Accel struct {
	cache        int
	hits, misses int
}

// NewAccel returns an empty interval cache.
func NewAccel() *Accel { return &Accel{} }

// Reset clears the cached interval and the hit counters.
func (acc *Accel) Reset() { *acc = Accel{} }

// Hits returns the number of lookups answered by the cache.
func (acc *Accel) Hits() int { return acc.hits }

// Misses returns the number of lookups which needed a search.
func (acc *Accel) Misses() int { return acc.misses }

// knots is a sorted table of x values which can be searched for the interval
// containing a point.
type knots struct {
	xs []float64

	// Usually the input data is uniform. This is our estimate of the point
	// spacing.
	dx float64
}

func (k *knots) init(xs []float64) {
	k.xs = xs
	k.dx = (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
}

// Domain returns the smallest and largest x values in the table.
func (k *knots) Domain() (lo, hi float64) {
	return k.xs[0], k.xs[len(k.xs)-1]
}

// find returns the index i of the interval [xs[i], xs[i+1]) containing x. The
// last interval is closed on the right. Points below or above the table map to
// the first or last interval. acc may be nil.
func (k *knots) find(x float64, acc *Accel) int {
	if acc != nil {
		i := acc.cache
		if i < len(k.xs)-1 && k.xs[i] <= x && x < k.xs[i+1] {
			acc.hits++
			return i
		}
		acc.misses++
	}

	i := k.search(x)
	if acc != nil {
		acc.cache = i
	}
	return i
}

func (k *knots) search(x float64) int {
	n := len(k.xs)
	if !(x >= k.xs[0]) {
		return 0
	} else if x >= k.xs[n-1] {
		return n - 2
	}

	// Guess under the assumption of uniform spacing.
	guess := int((x - k.xs[0]) / k.dx)
	if guess >= 0 && guess < n-1 && k.xs[guess] <= x && x < k.xs[guess+1] {
		return guess
	}

	// Binary search. xs[lo] <= x < xs[hi] throughout.
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= k.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
