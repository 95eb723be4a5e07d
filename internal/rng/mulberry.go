// Package rng implements the Mulberry32 seeded generator the pool pipeline
// depends on. The algorithm is a compatibility contract: pools shared for a
// seed must replay bit-for-bit, so neither the fold nor the mixing rounds
// may be altered.
package rng

// Source produces a deterministic float sequence in [0,1).
type Source interface {
	Next() float64
}

// Mulberry is a Mulberry32 generator.
type Mulberry struct {
	state uint32
}

// New seeds a generator from a numeric seed.
func New(seed uint32) *Mulberry {
	return &Mulberry{state: seed}
}

// NewString seeds a generator from a string seed via Fold.
func NewString(seed string) *Mulberry {
	return &Mulberry{state: uint32(Fold(seed))}
}

// Fold reduces a string to a 32-bit signed integer using the JS
// `((hash << 5) - hash) + charCode` accumulation, wrapped at each step.
func Fold(s string) int32 {
	var hash int32
	for _, ch := range s {
		hash = (hash<<5 - hash) + int32(ch)
	}
	return hash
}

// Next advances the state by the Mulberry32 constant and mixes it through
// two xorshift-multiply rounds. Result is the unsigned 32-bit output
// divided by 2^32, so the range is [0,1).
func (m *Mulberry) Next() float64 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296.0
}

// Pick returns floor(Next()*n). The truncation bias toward low indices is
// part of the reproducibility contract; do not replace with rejection
// sampling.
func (m *Mulberry) Pick(n int) int {
	return int(m.Next() * float64(n))
}
