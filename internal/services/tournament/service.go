// Package tournament drives duels and round-robin tournaments
package tournament

//go:generate mockgen -destination=mock/mock_service.go -package=mocktournament -source=service.go

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/brawl-tournament/internal/config"
	"github.com/KirkDiggler/brawl-tournament/internal/dice"
	"github.com/KirkDiggler/brawl-tournament/internal/entities"
	dnderr "github.com/KirkDiggler/brawl-tournament/internal/errors"
	"github.com/KirkDiggler/brawl-tournament/internal/events"
	"github.com/KirkDiggler/brawl-tournament/internal/repositories/tournaments"
	"github.com/KirkDiggler/brawl-tournament/internal/uuid"
)

// Service defines the tournament service interface
type Service interface {
	// RunDuel fights a and b until one drops or the round cap is hit.
	// Both fighters must be equipped.
	RunDuel(ctx context.Context, index int, a, b *entities.Character) (*entities.Duel, error)

	// RunTournament fights every unordered pair once, in (i, j) order with
	// i < j, restoring both fighters after each bout. The finished
	// tournament is stored before it is returned.
	RunTournament(ctx context.Context, fighters []*entities.Character) (*entities.Tournament, error)

	// GetTournament retrieves a stored tournament by ID
	GetTournament(ctx context.Context, id string) (*entities.Tournament, error)

	// ListTournaments returns stored tournaments, most recent first
	ListTournaments(ctx context.Context, limit int) ([]*entities.Tournament, error)
}

type service struct {
	roller        dice.Roller
	bus           *events.Bus
	repository    tournaments.Repository
	uuidGenerator uuid.Generator
	combat        config.CombatConfig
	logger        *zap.Logger
	now           func() time.Time
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller        dice.Roller
	Bus           *events.Bus
	Repository    tournaments.Repository
	UUIDGenerator uuid.Generator
	// Combat defaults to config.DefaultCombat(); NewService panics if it fails Validate
	Combat *config.CombatConfig
	Logger *zap.Logger
}

// NewService creates a new tournament service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Roller == nil {
		panic("roller is required")
	}

	svc := &service{
		roller:        cfg.Roller,
		bus:           cfg.Bus,
		repository:    cfg.Repository,
		uuidGenerator: cfg.UUIDGenerator,
		combat:        config.DefaultCombat(),
		logger:        cfg.Logger,
		now:           time.Now,
	}

	if cfg.Combat != nil {
		svc.combat = *cfg.Combat
	}
	if err := svc.combat.Validate(); err != nil {
		panic(err.Error())
	}
	if svc.repository == nil {
		svc.repository = tournaments.NewInMemoryRepository()
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}

	return svc
}

func (s *service) RunDuel(ctx context.Context, index int, a, b *entities.Character) (*entities.Duel, error) {
	if a == nil || b == nil {
		return nil, dnderr.InvalidArgument("a duel needs two fighters")
	}
	if a == b || a.Name == b.Name {
		return nil, dnderr.InvalidArgumentf("%s cannot fight themselves", a.Name)
	}
	for _, f := range []*entities.Character{a, b} {
		if f.Weapon == nil {
			return nil, dnderr.UnequippedAttacker(f.Name)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, dnderr.Wrap(err, "duel cancelled")
	}

	duel := entities.NewDuel(index, a, b)
	duel.Start()

	if err := s.emit(&events.DuelStartedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeDuelStarted, Actor: a, Target: b},
		Duel:      duel,
	}); err != nil {
		return nil, err
	}

	for round := 1; round <= s.combat.MaxRounds && a.IsAlive() && b.IsAlive(); round++ {
		duel.Rounds = round

		heads, err := s.roller.CoinFlip()
		if err != nil {
			return nil, dnderr.Wrapf(err, "deciding attack order in round %d", round)
		}
		first, second := b, a
		if heads {
			first, second = a, b
		}

		if err := s.emit(&events.RoundStartedEvent{
			BaseEvent: events.BaseEvent{Type: events.EventTypeRoundStarted, Actor: first, Target: second},
			Duel:      duel,
			Round:     round,
		}); err != nil {
			return nil, err
		}

		if err := s.strike(duel, round, first, second); err != nil {
			return nil, err
		}
		if !second.IsAlive() {
			break
		}

		if err := s.strike(duel, round, second, first); err != nil {
			return nil, err
		}
		if !first.IsAlive() {
			break
		}
	}

	if err := s.conclude(duel, a, b); err != nil {
		return nil, err
	}

	return duel, nil
}

func (s *service) strike(duel *entities.Duel, round int, attacker, target *entities.Character) error {
	result, err := attacker.Attack(s.roller, target, s.combat.CriticalMultiplier)
	if err != nil {
		return err
	}
	duel.Attacks = append(duel.Attacks, result)

	return s.emit(&events.AttackResolvedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeAttackResolved, Actor: attacker, Target: target},
		Duel:      duel,
		Round:     round,
		Result:    result,
	})
}

// conclude picks the winner. A lone survivor wins outright; anything else
// is settled on a coin flip with heads going to a.
func (s *service) conclude(duel *entities.Duel, a, b *entities.Character) error {
	var (
		winner *entities.Character
		why    entities.Termination
	)

	switch {
	case a.IsAlive() && !b.IsAlive():
		winner, why = a, entities.TerminationKnockout
	case b.IsAlive() && !a.IsAlive():
		winner, why = b, entities.TerminationKnockout
	default:
		why = entities.TerminationRoundLimit
		if !a.IsAlive() {
			why = entities.TerminationBothDown
		}

		heads, err := s.roller.CoinFlip()
		if err != nil {
			return dnderr.Wrapf(err, "breaking %s tie", why)
		}
		winner = b
		if heads {
			winner = a
		}
	}

	duel.Conclude(winner.Name, why)

	loser := b
	if winner == b {
		loser = a
	}

	return s.emit(&events.DuelConcludedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeDuelConcluded, Actor: winner, Target: loser},
		Duel:      duel,
	})
}

func (s *service) RunTournament(ctx context.Context, fighters []*entities.Character) (*entities.Tournament, error) {
	if len(fighters) < 2 {
		return nil, dnderr.InvalidArgumentf("a tournament needs at least 2 fighters, got %d", len(fighters))
	}

	roster := make([]string, 0, len(fighters))
	seen := make(map[string]bool, len(fighters))
	for _, f := range fighters {
		if f == nil {
			return nil, dnderr.InvalidArgument("roster contains a nil fighter")
		}
		if seen[f.Name] {
			return nil, dnderr.InvalidArgumentf("fighter %s entered twice", f.Name)
		}
		if f.Weapon == nil {
			return nil, dnderr.UnequippedAttacker(f.Name)
		}
		seen[f.Name] = true
		roster = append(roster, f.Name)
	}

	t := &entities.Tournament{
		ID:        s.uuidGenerator.New(),
		Roster:    roster,
		StartedAt: s.now(),
	}

	log := s.logger.With(zap.String("tournament_id", t.ID))
	log.Info("tournament started",
		zap.Strings("roster", roster),
		zap.Int("fights", entities.ExpectedFights(len(fighters))))

	for i := 0; i < len(fighters); i++ {
		for j := i + 1; j < len(fighters); j++ {
			if err := ctx.Err(); err != nil {
				return nil, dnderr.Wrapf(err, "tournament %s cancelled after %d fights", t.ID, len(t.Fights))
			}

			duel, err := s.RunDuel(ctx, len(t.Fights)+1, fighters[i], fighters[j])
			if err != nil {
				return nil, dnderr.Wrapf(err, "fight %d: %s vs %s", len(t.Fights)+1, fighters[i].Name, fighters[j].Name)
			}
			fight := t.Record(duel)

			log.Debug("fight recorded",
				zap.Int("fight", fight.FightIndex),
				zap.String("winner", fight.Winner),
				zap.String("termination", string(duel.Termination)),
				zap.Int("rounds", duel.Rounds))

			if err := s.restore(fighters[i]); err != nil {
				return nil, err
			}
			if err := s.restore(fighters[j]); err != nil {
				return nil, err
			}
		}
	}

	t.CompletedAt = s.now()

	if err := s.repository.Create(ctx, t); err != nil {
		return nil, dnderr.Wrapf(err, "storing tournament %s", t.ID)
	}

	if err := s.emit(&events.TournamentCompletedEvent{
		BaseEvent:  events.BaseEvent{Type: events.EventTypeTournamentCompleted},
		Tournament: t,
	}); err != nil {
		return nil, err
	}

	log.Info("tournament completed", zap.Duration("elapsed", t.CompletedAt.Sub(t.StartedAt)))

	return t, nil
}

// restore patches a fighter up to a fresh draw from the reset band,
// whatever happened in the bout
func (s *service) restore(f *entities.Character) error {
	hp, err := s.roller.IntRange(s.combat.HealthResetMin, s.combat.HealthResetMax)
	if err != nil {
		return dnderr.Wrapf(err, "restoring %s", f.Name)
	}

	previous := f.Health
	f.RestoreHealth(hp)

	return s.emit(&events.HealthRestoredEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeHealthRestored, Actor: f},
		Previous:  previous,
		Health:    hp,
	})
}

func (s *service) GetTournament(ctx context.Context, id string) (*entities.Tournament, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("tournament ID is required")
	}

	t, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get tournament")
	}
	return t, nil
}

func (s *service) ListTournaments(ctx context.Context, limit int) ([]*entities.Tournament, error) {
	list, err := s.repository.ListRecent(ctx, limit)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list tournaments")
	}
	return list, nil
}

func (s *service) emit(event events.Event) error {
	if err := s.bus.Emit(event); err != nil {
		return dnderr.Wrapf(err, "emitting %s", event.GetType())
	}
	return nil
}
