package events

import (
	"github.com/KirkDiggler/brawl-tournament/internal/entities"
	"github.com/KirkDiggler/brawl-tournament/internal/entities/attack"
)

// WeaponChosenEvent is emitted when a fighter picks up a weapon
type WeaponChosenEvent struct {
	BaseEvent
	Weapon *entities.Weapon
}

// DuelStartedEvent is emitted when a bout begins. Actor is fighter A, Target fighter B.
type DuelStartedEvent struct {
	BaseEvent
	Duel *entities.Duel
}

// RoundStartedEvent is emitted once the attack order for a round is known.
// Actor attacks first.
type RoundStartedEvent struct {
	BaseEvent
	Duel  *entities.Duel
	Round int
}

// AttackResolvedEvent carries the outcome of a single attack
type AttackResolvedEvent struct {
	BaseEvent
	Duel   *entities.Duel
	Round  int
	Result *attack.Result
}

// DuelConcludedEvent is emitted once a winner is decided. Actor is the winner.
type DuelConcludedEvent struct {
	BaseEvent
	Duel *entities.Duel
}

// HealthRestoredEvent is emitted when a fighter is patched up between bouts
type HealthRestoredEvent struct {
	BaseEvent
	Previous int
	Health   int
}

// TournamentCompletedEvent is emitted after the last bout is recorded
type TournamentCompletedEvent struct {
	BaseEvent
	Tournament *entities.Tournament
}
