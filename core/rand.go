package core

// PseudoRandom is a deterministic splitmix64 generator.
// Seeded explicitly at the point of use (normally from the current
// tick plus a stable salt) so identical replays draw identical
// sequences. Never share one instance across ticks.
type PseudoRandom struct {
	state uint64
}

func NewPseudoRandom(seed uint64) *PseudoRandom {
	return &PseudoRandom{state: seed}
}

// NextUint64 advances the generator and returns the next raw value
func (r *PseudoRandom) NextUint64() uint64 {
	r.state += 0x9E3779B97F4A7C15
	z := r.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// IntN returns a value in [0, n). Panics if n <= 0
func (r *PseudoRandom) IntN(n int) int {
	if n <= 0 {
		panic("core: IntN with non-positive bound")
	}
	return int(r.NextUint64() % uint64(n))
}

// Chance returns true with probability 1/oneIn
func (r *PseudoRandom) Chance(oneIn int) bool {
	return r.IntN(oneIn) == 0
}

// Shuffle performs a Fisher-Yates shuffle over n elements
func (r *PseudoRandom) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.IntN(i+1))
	}
}
