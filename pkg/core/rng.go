package core

import (
	"math/rand/v2"
	"sync"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. It is not safe for unsynchronized concurrent use; the driver
// loop is expected to step sims sequentially.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform draw in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a uniform draw in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool { return r.r.IntN(2) == 1 }

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

var (
	globalOnce sync.Once
	globalRNG  *RNG
)

// Global returns the process-wide time-seeded generator. Stochastic rules
// fall back to it when no RNG is injected at construction time.
func Global() *RNG {
	globalOnce.Do(func() {
		globalRNG = NewRNG(time.Now().UnixNano())
	})
	return globalRNG
}
