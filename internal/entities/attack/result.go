package attack

import (
	"fmt"
	"math"
)

// DefaultCriticalMultiplier scales damage on a critical hit
const DefaultCriticalMultiplier = 1.5

// Outcome is how a single attack resolved
type Outcome string

const (
	OutcomeDodged Outcome = "dodged"
	OutcomeMissed Outcome = "missed"
	OutcomeHit    Outcome = "hit"
)

// Result is the full record of one attack, in resolution order
type Result struct {
	Attacker string
	Target   string
	Weapon   string
	Outcome  Outcome

	// BaseDamage is the weapon roll before the critical multiplier
	BaseDamage int
	// Damage is BaseDamage after the critical multiplier
	Damage   int
	Critical bool
	// Absorbed is the part of Damage stopped by armor
	Absorbed int
	// ActualDamage is what came off the target's health
	ActualDamage int

	TargetHealth int
}

// Landed reports whether the attack got past dodge and accuracy checks
func (r *Result) Landed() bool {
	return r.Outcome == OutcomeHit
}

func (r *Result) String() string {
	switch r.Outcome {
	case OutcomeDodged:
		return fmt.Sprintf("%s dodges %s", r.Target, r.Attacker)
	case OutcomeMissed:
		return fmt.Sprintf("%s misses %s", r.Attacker, r.Target)
	}

	crit := ""
	if r.Critical {
		crit = " (critical)"
	}
	return fmt.Sprintf("%s hits %s with %s for %d%s, armor absorbs %d, %s takes %d",
		r.Attacker, r.Target, r.Weapon, r.Damage, crit, r.Absorbed, r.Target, r.ActualDamage)
}

// ApplyCritical multiplies damage and floors the result
func ApplyCritical(damage int, multiplier float64) int {
	return int(math.Floor(float64(damage) * multiplier))
}

// Mitigate subtracts armor from damage, never going below zero.
// It returns the damage that gets through and the amount absorbed.
func Mitigate(damage, armor int) (actual, absorbed int) {
	if armor < 0 {
		armor = 0
	}
	actual = damage - armor
	if actual < 0 {
		actual = 0
	}
	return actual, damage - actual
}
