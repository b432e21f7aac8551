// Package roster turns fighter presets into equipped characters
package roster

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/brawl-tournament/internal/config"
	"github.com/KirkDiggler/brawl-tournament/internal/dice"
	"github.com/KirkDiggler/brawl-tournament/internal/entities"
	dnderr "github.com/KirkDiggler/brawl-tournament/internal/errors"
	"github.com/KirkDiggler/brawl-tournament/internal/events"
	"github.com/KirkDiggler/brawl-tournament/internal/services/armory"
)

// Service builds and equips the fighters for a tournament
type Service interface {
	// Build creates unequipped characters from fighter presets, in order
	Build(defs []config.FighterDef) ([]*entities.Character, error)

	// Equip gives each fighter one of the armory candidates on a coin flip,
	// in roster order
	Equip(ctx context.Context, fighters []*entities.Character) error
}

type service struct {
	armory armory.Service
	roller dice.Roller
	bus    *events.Bus
	combat config.CombatConfig
	logger *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Armory armory.Service
	Roller dice.Roller
	Bus    *events.Bus
	// Combat supplies the armor and critical defaults and the health cap.
	// Nil means config.DefaultCombat().
	Combat *config.CombatConfig
	Logger *zap.Logger
}

// NewService creates a new roster service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Armory == nil {
		panic("armory service is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}

	svc := &service{
		armory: cfg.Armory,
		roller: cfg.Roller,
		bus:    cfg.Bus,
		combat: config.DefaultCombat(),
		logger: cfg.Logger,
	}
	if cfg.Combat != nil {
		svc.combat = *cfg.Combat
	}
	if err := svc.combat.Validate(); err != nil {
		panic(err.Error())
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}

	return svc
}

func (s *service) Build(defs []config.FighterDef) ([]*entities.Character, error) {
	if len(defs) < 2 {
		return nil, dnderr.InvalidArgumentf("a roster needs at least 2 fighters, got %d", len(defs))
	}

	seen := make(map[string]bool, len(defs))
	fighters := make([]*entities.Character, 0, len(defs))

	for _, def := range defs {
		if seen[def.Name] {
			return nil, dnderr.InvalidArgumentf("fighter %s listed twice", def.Name)
		}
		seen[def.Name] = true

		cfg := entities.CharacterConfig{
			Name:           def.Name,
			Health:         def.Health,
			Armor:          def.Armor,
			DodgeChance:    def.Dodge,
			CriticalChance: def.Critical,
		}
		if cfg.Armor == nil {
			armor := s.combat.BaseArmor
			cfg.Armor = &armor
		}
		if cfg.CriticalChance == nil {
			crit := s.combat.CriticalChance
			cfg.CriticalChance = &crit
		}

		c, err := entities.NewCharacter(cfg)
		if err != nil {
			return nil, err
		}
		if s.combat.MaxHealth > 0 && c.MaxHealth > s.combat.MaxHealth {
			return nil, dnderr.Validationf("character %s: health %d above cap %d", c.Name, c.MaxHealth, s.combat.MaxHealth)
		}

		fighters = append(fighters, c)
	}

	return fighters, nil
}

func (s *service) Equip(ctx context.Context, fighters []*entities.Character) error {
	candidates := s.armory.Candidates()

	for _, f := range fighters {
		if err := ctx.Err(); err != nil {
			return dnderr.Wrap(err, "equip cancelled")
		}

		w, err := f.ChooseWeapon(s.roller, candidates)
		if err != nil {
			return err
		}

		s.logger.Debug("weapon chosen",
			zap.String("fighter", f.Name),
			zap.String("weapon", w.Name))

		event := &events.WeaponChosenEvent{
			BaseEvent: events.BaseEvent{Type: events.EventTypeWeaponChosen, Actor: f},
			Weapon:    w,
		}
		if err := s.bus.Emit(event); err != nil {
			return dnderr.Wrapf(err, "announcing weapon for %s", f.Name)
		}
	}

	return nil
}
