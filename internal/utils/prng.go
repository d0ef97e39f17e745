// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded math/rand generator so a whole simulation run
// can be replayed from its seed.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService creates a generator for seed. A zero seed uses the current
// time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed actually in use.
func (s *PRNGService) Seed() int64 { return s.seed }

// Float64 returns a float64 in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Between returns a float64 in [lo, hi).
func (s *PRNGService) Between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Normal draws from a normal distribution with the given mean and
// standard deviation.
func (s *PRNGService) Normal(mean, stddev float64) float64 {
	return mean + s.rng.NormFloat64()*stddev
}

// Chance reports true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}
