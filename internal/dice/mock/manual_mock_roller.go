package mockdice

import (
	"sync"

	"github.com/KirkDiggler/brawl-tournament/internal/dice"
	dnderr "github.com/KirkDiggler/brawl-tournament/internal/errors"
)

// Draws that make the intent of a scripted sequence readable in tests
const (
	Heads = 0.9 // CoinFlip -> true
	Tails = 0.1 // CoinFlip -> false

	// Low passes every "draw < chance" check with a non-zero chance
	Low = 0.0
	// High fails every "draw < chance" check below 1
	High = 0.999
)

// ManualMockRoller implements dice.Roller for testing with predetermined draws.
// Every call consumes one draw from the script, in order.
type ManualMockRoller struct {
	mu        sync.Mutex
	draws     []float64
	drawIndex int
}

// NewManualMockRoller creates a new scripted roller
func NewManualMockRoller(draws ...float64) *ManualMockRoller {
	return &ManualMockRoller{
		draws: append([]float64{}, draws...),
	}
}

// SetNextDraw appends a draw to the script
func (m *ManualMockRoller) SetNextDraw(draw float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws = append(m.draws, draw)
}

// SetDraws replaces the script
func (m *ManualMockRoller) SetDraws(draws []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws = append([]float64{}, draws...)
	m.drawIndex = 0
}

// Reset clears the script
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws = []float64{}
	m.drawIndex = 0
}

// Remaining reports how many scripted draws are still unused
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.draws) - m.drawIndex
}

func (m *ManualMockRoller) next() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.drawIndex >= len(m.draws) {
		return 0, dnderr.RollsExhaustedf("no more predetermined draws available (used %d of %d)", m.drawIndex, len(m.draws))
	}

	draw := m.draws[m.drawIndex]
	m.drawIndex++
	return draw, nil
}

// Float implements dice.Roller.Float
func (m *ManualMockRoller) Float() (float64, error) {
	draw, err := m.next()
	if err != nil {
		return 0, err
	}
	if draw < 0 || draw >= 1 {
		return 0, dnderr.InvalidArgumentf("invalid draw %v outside [0,1)", draw)
	}
	return draw, nil
}

// IntRange implements dice.Roller.IntRange
func (m *ManualMockRoller) IntRange(lo, hi int) (int, error) {
	draw, err := m.Float()
	if err != nil {
		return 0, err
	}
	return dice.Scale(draw, lo, hi), nil
}

// CoinFlip implements dice.Roller.CoinFlip
func (m *ManualMockRoller) CoinFlip() (bool, error) {
	draw, err := m.Float()
	if err != nil {
		return false, err
	}
	return draw > dice.CoinThreshold, nil
}
