// Package random provides the uniform randomness consumed by
// generators. This is a pure package: the only state is the
// pseudo-random stream itself.
package random

import (
	"math/rand/v2"
	"time"
)

// Source supplies uniform random values. Generators consume a single
// Source in a fixed call order, so a seeded Source reproduces a run.
type Source interface {
	// Float returns a uniform value between lo and hi. The order of
	// lo and hi does not matter.
	Float(lo, hi float64) float64

	// Int returns a uniform integer in [lo, hi], both ends included.
	Int(lo, hi int) int

	// Choice returns a uniform index in [0, n).
	Choice(n int) int

	// Sample returns k distinct indices from [0, n) in random order.
	// It panics if k is negative or greater than n.
	Sample(n, k int) []int
}

// Rand implements Source with a PCG generator.
type Rand struct {
	seed int64
	r    *rand.Rand
}

// New creates a Rand. Zero seed is replaced with a time-based one,
// the actual value is available from Seed.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	pcg := rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	return &Rand{seed: seed, r: rand.New(pcg)}
}

// Seed returns the seed of the stream.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Float returns lo + (hi-lo)*u where u is uniform in [0, 1).
func (r *Rand) Float(lo, hi float64) float64 {
	return lo + (hi-lo)*r.r.Float64()
}

// Int returns a uniform integer in [lo, hi].
func (r *Rand) Int(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Choice returns a uniform index in [0, n).
func (r *Rand) Choice(n int) int {
	return r.r.IntN(n)
}

// Sample draws k distinct indices out of n with a partial
// Fisher-Yates shuffle.
func (r *Rand) Sample(n, k int) []int {
	if k < 0 || k > n {
		panic("random: sample larger than population")
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := range k {
		j := i + r.r.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}
