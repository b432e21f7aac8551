package entities

import (
	"github.com/KirkDiggler/brawl-tournament/internal/dice"
	dnderr "github.com/KirkDiggler/brawl-tournament/internal/errors"
)

// Weapon is an immutable damage profile. Characters hold a pointer to the
// weapon they have equipped but never modify it.
type Weapon struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	MinDamage int     `json:"min_damage"`
	MaxDamage int     `json:"max_damage"`
	HitChance float64 `json:"hit_chance"`
}

// NewWeapon validates the stats and returns the weapon.
// Bad stats are rejected outright rather than clamped.
func NewWeapon(key, name string, minDamage, maxDamage int, hitChance float64) (*Weapon, error) {
	if name == "" {
		return nil, dnderr.Validationf("weapon %q: name is required", key)
	}
	if minDamage < 0 {
		return nil, dnderr.Validationf("weapon %s: min damage %d is negative", name, minDamage)
	}
	if maxDamage < minDamage {
		return nil, dnderr.Validationf("weapon %s: max damage %d below min damage %d", name, maxDamage, minDamage)
	}
	if hitChance < 0 || hitChance > 1 {
		return nil, dnderr.Validationf("weapon %s: hit chance %v outside [0,1]", name, hitChance)
	}

	return &Weapon{
		Key:       key,
		Name:      name,
		MinDamage: minDamage,
		MaxDamage: maxDamage,
		HitChance: hitChance,
	}, nil
}

// RollDamage draws once for accuracy and, on a hit, once more for magnitude.
// A miss returns 0.
func (w *Weapon) RollDamage(roller dice.Roller) (int, error) {
	r, err := roller.Float()
	if err != nil {
		return 0, dnderr.Wrapf(err, "rolling accuracy for %s", w.Name)
	}
	if r > w.HitChance {
		return 0, nil
	}

	dmg, err := roller.IntRange(w.MinDamage, w.MaxDamage)
	if err != nil {
		return 0, dnderr.Wrapf(err, "rolling damage for %s", w.Name)
	}
	return dmg, nil
}
