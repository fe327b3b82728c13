package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnotsSearch(t *testing.T) {
	k := &knots{}
	k.init([]float64{0, 1, 1.5, 4, 10})

	table := []struct {
		x float64
		i int
	}{
		{-1, 0}, {0, 0}, {0.999, 0}, {1, 1}, {1.2, 1}, {1.5, 2},
		{3.9, 2}, {4, 3}, {9.99, 3}, {10, 3}, {11, 3}, {math.NaN(), 0},
	}

	for _, test := range table {
		if i := k.search(test.x); i != test.i {
			t.Errorf("Expected search(%g) = %d, got %d.", test.x, test.i, i)
		}
		acc := NewAccel()
		if i := k.find(test.x, acc); i != test.i {
			t.Errorf("Expected find(%g) = %d, got %d.", test.x, test.i, i)
		}
	}
}

func TestAccelCaches(t *testing.T) {
	k := &knots{}
	k.init(linspace(0, 4, 5))

	acc := NewAccel()
	qs := linspace(0, 3.99, 100)
	for _, q := range qs {
		k.find(q, acc)
	}

	assert.Equal(t, len(qs), acc.Hits()+acc.Misses())
	assert.True(t, acc.Misses() <= 4, "misses = %d", acc.Misses())

	acc.Reset()
	assert.Equal(t, 0, acc.Hits())
	assert.Equal(t, 0, acc.Misses())
}

func TestAccelUnsortedQueries(t *testing.T) {
	sp, _ := NewSteffen([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9})
	qs := []float64{2.5, 0.5, 3, 1.5, 0, 2.5}

	acc := NewAccel()
	for _, q := range qs {
		assert.Equal(t, sp.Eval(q), sp.EvalAccel(q, acc), "q = %g", q)
	}
}
