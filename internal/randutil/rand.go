// Package randutil provides the seeded random sources used to lay out card
// tables and deal hands. Every source is reproducible from its seed.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG state words are derived from the one seed so call sites only ever
// have to log a single number.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// PCG is a rand/v2 PCG generator that remembers its seed.
type PCG struct {
	rng  *rand.Rand
	seed int64
}

// NewPCG returns a PCG source for seed
func NewPCG(seed int64) *PCG {
	return &PCG{rng: New(seed), seed: seed}
}

// Intn returns a uniform integer in [0, n)
func (p *PCG) Intn(n int) int {
	return p.rng.IntN(n)
}

// Shuffle permutes n elements in place using Fisher-Yates
func (p *PCG) Shuffle(n int, swap func(i, j int)) {
	p.rng.Shuffle(n, swap)
}

// Seed returns the seed the source was created with
func (p *PCG) Seed() int64 {
	return p.seed
}
