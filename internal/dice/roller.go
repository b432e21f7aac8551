package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller supplies every random draw the combat model consumes.
// Implementations must hand out draws in call order so a seeded or scripted
// source replays a fight exactly.
type Roller interface {
	// Float returns a uniform draw in [0, 1)
	Float() (float64, error)

	// IntRange returns a uniform integer in [lo, hi] inclusive
	IntRange(lo, hi int) (int, error)

	// CoinFlip is the 50/50 primitive. True means "the first option".
	CoinFlip() (bool, error)
}

// CoinThreshold is the draw a coin flip must exceed to land heads.
const CoinThreshold = 0.5

// Scale maps a uniform draw onto [lo, hi] the same way every roller does,
// so scripted draws and seeded draws agree on the resulting integer.
func Scale(draw float64, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := hi - lo + 1
	v := lo + int(draw*float64(span))
	if v > hi {
		v = hi
	}
	return v
}
