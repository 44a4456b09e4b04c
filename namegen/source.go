package namegen

import (
	"math/rand/v2"
	"sync"
)

// Source draws uniform integers in [0, n). Callers never pass n <= 0.
//
// Implementations shared between goroutines must be safe for concurrent use.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

// IntN uses the math/rand/v2 top-level generator, which is safe for
// concurrent use and seeded per process.
func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

var defaultSource Source = globalSource{}

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSource returns a deterministic source seeded with seed. It can be shared
// by concurrent generators.
func NewSource(seed uint64) Source {
	return &lockedSource{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}
