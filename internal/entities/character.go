package entities

import (
	"github.com/KirkDiggler/brawl-tournament/internal/dice"
	"github.com/KirkDiggler/brawl-tournament/internal/entities/attack"
	dnderr "github.com/KirkDiggler/brawl-tournament/internal/errors"
)

// Defaults applied to CharacterConfig fields left unset
const (
	DefaultHealth         = 15
	DefaultArmor          = 2
	DefaultDodgeChance    = 0.1
	DefaultCriticalChance = 0.2
)

// CharacterConfig describes a fighter before it enters the roster.
// Nil pointer fields take the package defaults.
type CharacterConfig struct {
	Name           string
	Health         *int
	Armor          *int
	DodgeChance    *float64
	CriticalChance *float64
}

type Character struct {
	Name           string  `json:"name"`
	MaxHealth      int     `json:"max_health"`
	Health         int     `json:"health"`
	Armor          int     `json:"armor"`
	DodgeChance    float64 `json:"dodge_chance"`
	CriticalChance float64 `json:"critical_chance"`
	Weapon         *Weapon `json:"weapon,omitempty"`
}

// NewCharacter builds a fighter with no weapon equipped
func NewCharacter(cfg CharacterConfig) (*Character, error) {
	if cfg.Name == "" {
		return nil, dnderr.Validationf("character name is required")
	}

	c := &Character{
		Name:           cfg.Name,
		MaxHealth:      DefaultHealth,
		Armor:          DefaultArmor,
		DodgeChance:    DefaultDodgeChance,
		CriticalChance: DefaultCriticalChance,
	}
	if cfg.Health != nil {
		c.MaxHealth = *cfg.Health
	}
	if cfg.Armor != nil {
		c.Armor = *cfg.Armor
	}
	if cfg.DodgeChance != nil {
		c.DodgeChance = *cfg.DodgeChance
	}
	if cfg.CriticalChance != nil {
		c.CriticalChance = *cfg.CriticalChance
	}

	if c.MaxHealth <= 0 {
		return nil, dnderr.Validationf("character %s: health %d must be positive", c.Name, c.MaxHealth)
	}
	if c.Armor < 0 {
		return nil, dnderr.Validationf("character %s: armor %d is negative", c.Name, c.Armor)
	}
	if !isChance(c.DodgeChance) {
		return nil, dnderr.Validationf("character %s: dodge chance %v outside [0,1]", c.Name, c.DodgeChance)
	}
	if !isChance(c.CriticalChance) {
		return nil, dnderr.Validationf("character %s: critical chance %v outside [0,1]", c.Name, c.CriticalChance)
	}

	c.Health = c.MaxHealth
	return c, nil
}

func isChance(v float64) bool {
	return v >= 0 && v <= 1
}

// IsAlive reports whether health is above zero
func (c *Character) IsAlive() bool {
	return c.Health > 0
}

// DisplayHealth is health clamped at zero, for narration
func (c *Character) DisplayHealth() int {
	if c.Health < 0 {
		return 0
	}
	return c.Health
}

// Equip sets the weapon directly, bypassing the random choice
func (c *Character) Equip(w *Weapon) {
	c.Weapon = w
}

// ChooseWeapon picks one of exactly two candidates on a coin flip.
// Heads takes the first candidate.
func (c *Character) ChooseWeapon(roller dice.Roller, candidates []*Weapon) (*Weapon, error) {
	if len(candidates) != 2 {
		return nil, dnderr.InvalidArgumentf("%s must choose between exactly 2 weapons, got %d", c.Name, len(candidates))
	}
	for _, w := range candidates {
		if w == nil {
			return nil, dnderr.InvalidArgumentf("%s was offered a nil weapon", c.Name)
		}
	}

	heads, err := roller.CoinFlip()
	if err != nil {
		return nil, dnderr.Wrapf(err, "%s choosing a weapon", c.Name)
	}

	c.Weapon = candidates[1]
	if heads {
		c.Weapon = candidates[0]
	}
	return c.Weapon, nil
}

// Attack resolves one swing at target. Draws happen in a fixed order:
// dodge, weapon accuracy, damage magnitude, critical. Only a landed hit
// changes the target's health.
func (c *Character) Attack(roller dice.Roller, target *Character, critMultiplier float64) (*attack.Result, error) {
	if c.Weapon == nil {
		return nil, dnderr.UnequippedAttacker(c.Name)
	}
	if target == nil {
		return nil, dnderr.InvalidArgumentf("%s has no target", c.Name)
	}

	result := &attack.Result{
		Attacker:     c.Name,
		Target:       target.Name,
		Weapon:       c.Weapon.Name,
		TargetHealth: target.Health,
	}

	dodge, err := roller.Float()
	if err != nil {
		return nil, dnderr.Wrapf(err, "rolling dodge for %s", target.Name)
	}
	if dodge < target.DodgeChance {
		result.Outcome = attack.OutcomeDodged
		return result, nil
	}

	base, err := c.Weapon.RollDamage(roller)
	if err != nil {
		return nil, err
	}
	if base == 0 {
		result.Outcome = attack.OutcomeMissed
		return result, nil
	}

	result.Outcome = attack.OutcomeHit
	result.BaseDamage = base
	result.Damage = base

	crit, err := roller.Float()
	if err != nil {
		return nil, dnderr.Wrapf(err, "rolling critical for %s", c.Name)
	}
	if crit < c.CriticalChance {
		result.Critical = true
		result.Damage = attack.ApplyCritical(base, critMultiplier)
	}

	result.ActualDamage, result.Absorbed = attack.Mitigate(result.Damage, target.Armor)
	target.Health -= result.ActualDamage
	result.TargetHealth = target.Health

	return result, nil
}

// RestoreHealth resets health after a bout
func (c *Character) RestoreHealth(hp int) {
	c.Health = hp
}
