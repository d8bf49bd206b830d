package island

import "math/rand"

// Rand is the seeded random source behind world generation.
// Every draw goes through it so a seed fully determines a run.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a source seeded with seed.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Float returns a value in [0, 1).
func (r *Rand) Float() float64 {
	return r.r.Float64()
}

// Uniform returns a value in [lo, hi).
func (r *Rand) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Float64()*(hi-lo)
}

// IntRange returns an int in [lo, hi], both inclusive.
func (r *Rand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Intn(hi-lo+1)
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Sign returns -1 or +1 with equal probability.
func (r *Rand) Sign() float64 {
	if r.r.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Int63 returns a non-negative pseudo-random 63-bit integer, used to derive child seeds.
func (r *Rand) Int63() int64 {
	return r.r.Int63()
}
