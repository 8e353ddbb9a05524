package rng

import (
	"math/rand"
)

// Seeded wraps math/rand with a fixed seed so shuffles can be replayed.
// Use Crypto for real play; Seeded exists for tests and reproducible sessions.
type Seeded struct {
	rand *rand.Rand
}

// NewSeeded returns a Seeded generator for the provided seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rand: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn will return a random number up to but not including n
func (s *Seeded) Intn(n int) int {
	return s.rand.Intn(n)
}
