// source.go — Randomness used to pick the pixels swapped on every row.
package rowgen

import "math/rand/v2"

// Source yields uniform integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it, so seeded runs need no adapter.
type Source interface {
	IntN(n int) int
}

// Global draws from the process-wide math/rand/v2 source.
type Global struct{}

// IntN implements Source.
func (Global) IntN(n int) int {
	return rand.IntN(n)
}

// NewSeeded returns a deterministic source for the given seed.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sequence replays fixed values, cycling when exhausted. Each value is
// reduced modulo n so any sequence is valid for any width.
type Sequence struct {
	Values []int
	pos    int
}

// IntN implements Source.
func (s *Sequence) IntN(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
