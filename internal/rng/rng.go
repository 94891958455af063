package rng

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/salex1993/Who-Am-I-Bible-Riddles/internal/rng Roller

// Roller provides the randomness used for riddle picks, option shuffles
// and distractor sampling. Tests inject a mock to pin exact orderings.
type Roller interface {
	// Intn returns a uniform value in [0, n)
	Intn(n int) int

	// Shuffle pseudo-randomizes the order of n elements via swap
	Shuffle(n int, swap func(i, j int))
}

// Config for the default roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultRoller implements Roller using math/rand
type DefaultRoller struct {
	random *rand.Rand
}

// New creates a new roller
func New(cfg *Config) *DefaultRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &DefaultRoller{
		random: rand.New(source),
	}
}

// Intn returns a uniform value in [0, n)
func (r *DefaultRoller) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return r.random.Intn(n)
}

// Shuffle pseudo-randomizes the order of n elements via swap
func (r *DefaultRoller) Shuffle(n int, swap func(i, j int)) {
	r.random.Shuffle(n, swap)
}
