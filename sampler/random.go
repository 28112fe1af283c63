package sampler

import (
	"math/rand"
	"time"
)

// DefaultContinueProbability is the probability of More returning true
// for a Random sampler.
const DefaultContinueProbability = 0.6

// Random draws from a seeded pseudo-random source.
// The seed is stored so it can be reported on test failure.
type Random struct {
	rng  *rand.Rand
	seed int64
	more float64
}

// Option configures a Random sampler.
type Option func(*Random)

// WithContinueProbability sets the probability p of More returning true.
// Panics if p is not within [0, 1].
func WithContinueProbability(p float64) Option {
	if p < 0 || p > 1 {
		panic("sampler: WithContinueProbability(p) with p outside [0,1]")
	}
	return func(r *Random) {
		r.more = p
	}
}

// NewRandom creates a seeded sampler. A seed of 0 selects a time-based seed.
func NewRandom(seed int64, opts ...Option) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := &Random{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
		more: DefaultContinueProbability,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Seed returns the seed of this sampler.
func (r *Random) Seed() int64 {
	return r.seed
}

// Int is part of interface Sampler.
func (r *Random) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min+1)
}

// Bool is part of interface Sampler.
func (r *Random) Bool() bool {
	return r.rng.Intn(2) == 1
}

// Choice is part of interface Sampler.
func (r *Random) Choice(n int) int {
	if n <= 0 {
		panic("sampler: Choice(n) with n <= 0")
	}
	return r.rng.Intn(n)
}

// More is part of interface Sampler.
func (r *Random) More() bool {
	return r.rng.Float64() < r.more
}

// Bits is part of interface Sampler.
func (r *Random) Bits(n uint) uint64 {
	return r.rng.Uint64() & mask(n)
}

var _ Sampler = (*Random)(nil)
