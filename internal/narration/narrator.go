// Package narration writes a running commentary of a tournament to a zap logger
package narration

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/brawl-tournament/internal/events"
)

// Narrator is an event listener that logs each step of every bout
type Narrator struct {
	logger *zap.Logger
}

// NewNarrator creates a narrator. A nil logger narrates to nowhere.
func NewNarrator(logger *zap.Logger) *Narrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Narrator{logger: logger.Named("ring")}
}

// Subscribe attaches the narrator to every tournament event
func (n *Narrator) Subscribe(bus *events.Bus) {
	bus.SubscribeAll(n, events.AllEventTypes...)
}

func (n *Narrator) ID() string    { return "narration" }
func (n *Narrator) Priority() int { return events.PriorityNarration }

func (n *Narrator) HandleEvent(event events.Event) error {
	switch e := event.(type) {
	case *events.WeaponChosenEvent:
		n.logger.Info("picks up a weapon",
			zap.String("fighter", e.GetActor().Name),
			zap.String("weapon", e.Weapon.Name))

	case *events.DuelStartedEvent:
		n.logger.Info("fight begins",
			zap.Int("fight", e.Duel.Index),
			zap.String("fighter_a", e.Duel.FighterA),
			zap.String("fighter_b", e.Duel.FighterB))

	case *events.RoundStartedEvent:
		n.logger.Info("round",
			zap.Int("fight", e.Duel.Index),
			zap.Int("round", e.Round),
			zap.String("first", e.GetActor().Name))

	case *events.AttackResolvedEvent:
		r := e.Result
		fields := []zap.Field{
			zap.Int("fight", e.Duel.Index),
			zap.Int("round", e.Round),
			zap.String("outcome", string(r.Outcome)),
		}
		if r.Landed() {
			fields = append(fields,
				zap.Bool("critical", r.Critical),
				zap.Int("damage", r.Damage),
				zap.Int("absorbed", r.Absorbed),
				zap.Int("actual", r.ActualDamage),
				zap.Int("target_health", e.GetTarget().DisplayHealth()))
		}
		n.logger.Info(r.String(), fields...)

	case *events.DuelConcludedEvent:
		n.logger.Info("fight over",
			zap.Int("fight", e.Duel.Index),
			zap.String("winner", e.Duel.Winner),
			zap.String("loser", e.Duel.Loser()),
			zap.String("termination", string(e.Duel.Termination)),
			zap.Int("rounds", e.Duel.Rounds))

	case *events.HealthRestoredEvent:
		n.logger.Debug("patched up",
			zap.String("fighter", e.GetActor().Name),
			zap.Int("health", e.Health))

	case *events.TournamentCompletedEvent:
		for _, f := range e.Tournament.Fights {
			n.logger.Info("result",
				zap.Int("fight", f.FightIndex),
				zap.String("winner", f.Winner))
		}
	}

	return nil
}
