package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Roller provides the randomness used for xp awards and winner draws.
// A single Roller is shared across services whose handlers run on separate
// goroutines, so every draw takes the mutex.
type Roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new roller
func New(cfg *Config) *Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Roller{
		random: random,
	}
}

// IntBetween returns a uniform random value in the inclusive range [min, max]
func (r *Roller) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.random.Intn(max-min+1)
}

// Pick returns a uniformly chosen element of items, or "" when items is empty
func (r *Roller) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return items[r.random.Intn(len(items))]
}

// Sample returns n distinct elements of items chosen uniformly without
// replacement. When n exceeds the number of items, every item is returned.
func (r *Roller) Sample(items []string, n int) []string {
	if n >= len(items) {
		n = len(items)
	}
	if n <= 0 {
		return []string{}
	}

	shuffled := make([]string, len(items))
	copy(shuffled, items)
	r.mu.Lock()
	r.random.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	r.mu.Unlock()

	return shuffled[:n]
}
