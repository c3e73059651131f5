package core

// Rand is a source of uniform values in [0,1).
// Every function that samples randomness takes one explicitly so that
// replays and tests are deterministic.
type Rand func() float64

// pick returns a uniform index in [0,n). n must be positive.
func (r Rand) pick(n int) int {
	idx := int(r() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// chance reports true with probability p.
func (r Rand) chance(p float64) bool {
	return r() < p
}

// Sequence returns a Rand that cycles through the given values.
// Useful in tests where exact draws matter.
func Sequence(values ...float64) Rand {
	if len(values) == 0 {
		values = []float64{0}
	}
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}
