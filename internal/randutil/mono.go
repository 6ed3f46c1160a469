package randutil

import "math"

const (
	monoBig  = math.MaxInt32
	monoSeed = 161803398
)

// Mono is Knuth's subtractive generator as implemented by the Mono 2.x
// System.Random. Rule seeds were historically expanded with this generator, so
// a given seed always lays out the same card table as it did there.
type Mono struct {
	state [56]int32
	next  int
	nextp int
	seed  int32
}

// NewMono returns a Mono source for seed
func NewMono(seed int32) *Mono {
	m := &Mono{seed: seed}

	abs := seed
	if seed == math.MinInt32 {
		abs = math.MaxInt32
	} else if seed < 0 {
		abs = -seed
	}

	mj := int32(monoSeed) - abs
	m.state[55] = mj
	mk := int32(1)
	for i := 1; i < 55; i++ {
		ii := (21 * i) % 55
		m.state[ii] = mk
		mk = mj - mk
		if mk < 0 {
			mk += monoBig
		}
		mj = m.state[ii]
	}
	for range 4 {
		for i := 1; i < 56; i++ {
			m.state[i] -= m.state[1+(i+30)%55]
			if m.state[i] < 0 {
				m.state[i] += monoBig
			}
		}
	}

	m.next = 0
	m.nextp = 31
	return m
}

// Sample returns a float in [0, 1)
func (m *Mono) Sample() float64 {
	if m.next++; m.next >= 56 {
		m.next = 1
	}
	if m.nextp++; m.nextp >= 56 {
		m.nextp = 1
	}
	v := m.state[m.next] - m.state[m.nextp]
	if v < 0 {
		v += monoBig
	}
	m.state[m.next] = v
	return float64(v) * (1.0 / monoBig)
}

// Intn returns an integer in [0, n). It always consumes exactly one sample,
// including when n is 1.
func (m *Mono) Intn(n int) int {
	if n < 0 {
		panic("randutil: invalid argument to Intn")
	}
	return int(m.Sample() * float64(n))
}

// Shuffle permutes n elements in place. The walk runs from the end of the
// sequence towards the front, matching the order draws were taken in when
// rule seeds were first published.
func (m *Mono) Shuffle(n int, swap func(i, j int)) {
	for i := n; i > 1; {
		j := m.Intn(i)
		i--
		swap(j, i)
	}
}

// Seed returns the seed the source was created with
func (m *Mono) Seed() int64 {
	return int64(m.seed)
}
