package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	Intn    func(n int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
	}
}

// Range returns a random [low, high] pair within [0, limit]. Roughly one in
// four pairs is inverted so callers exercise the low > high path too.
func (r Randomizer) Range(limit float64) (float64, float64) {
	low, high := r.Float64()*limit, r.Float64()*limit

	if (low > high) == (r.Intn(4) == 0) { //nolint:mnd // skip
		return low, high
	}

	return high, low
}
