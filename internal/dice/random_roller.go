package dice

import (
	"math/rand"
	"sync"
	"time"
)

// randomRoller implements Roller on top of a seeded math/rand source
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded with seed. A zero seed picks one
// from the clock.
func NewRandomRoller(seed int64) Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float implements Roller.Float
func (r *randomRoller) Float() (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64(), nil
}

// IntRange implements Roller.IntRange. It always consumes exactly one draw.
func (r *randomRoller) IntRange(lo, hi int) (int, error) {
	draw, err := r.Float()
	if err != nil {
		return 0, err
	}
	return Scale(draw, lo, hi), nil
}

// CoinFlip implements Roller.CoinFlip
func (r *randomRoller) CoinFlip() (bool, error) {
	draw, err := r.Float()
	if err != nil {
		return false, err
	}
	return draw > CoinThreshold, nil
}
