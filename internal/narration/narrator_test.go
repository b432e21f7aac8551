package narration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/KirkDiggler/brawl-tournament/internal/entities"
	"github.com/KirkDiggler/brawl-tournament/internal/entities/attack"
	"github.com/KirkDiggler/brawl-tournament/internal/events"
	"github.com/KirkDiggler/brawl-tournament/internal/narration"
)

func newNarratedBus(level zapcore.Level) (*events.Bus, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	bus := events.NewBus(nil)
	narration.NewNarrator(zap.New(core)).Subscribe(bus)
	return bus, logs
}

func TestNarrator_AttackLine(t *testing.T) {
	bus, logs := newNarratedBus(zapcore.InfoLevel)

	target := &entities.Character{Name: "Nefor", Health: -2}
	duel := &entities.Duel{Index: 4, FighterA: "Punk", FighterB: "Nefor"}
	result := &attack.Result{
		Attacker:     "Punk",
		Target:       "Nefor",
		Weapon:       "pepper spray",
		Outcome:      attack.OutcomeHit,
		BaseDamage:   6,
		Damage:       9,
		Critical:     true,
		Absorbed:     1,
		ActualDamage: 8,
		TargetHealth: -2,
	}

	require.NoError(t, bus.Emit(&events.AttackResolvedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeAttackResolved, Target: target},
		Duel:      duel,
		Round:     2,
		Result:    result,
	}))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, result.String(), entry.Message)
	assert.Equal(t, "ring", entry.LoggerName)

	ctx := entry.ContextMap()
	assert.Equal(t, int64(4), ctx["fight"])
	assert.Equal(t, int64(2), ctx["round"])
	assert.Equal(t, true, ctx["critical"])
	assert.Equal(t, int64(8), ctx["actual"])
	// narrated health never goes below zero
	assert.Equal(t, int64(0), ctx["target_health"])
}

func TestNarrator_DodgeHasNoDamageFields(t *testing.T) {
	bus, logs := newNarratedBus(zapcore.InfoLevel)

	require.NoError(t, bus.Emit(&events.AttackResolvedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeAttackResolved},
		Duel:      &entities.Duel{Index: 1},
		Round:     1,
		Result:    &attack.Result{Attacker: "Punk", Target: "Nefor", Outcome: attack.OutcomeDodged},
	}))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Nefor dodges Punk", entry.Message)
	assert.NotContains(t, entry.ContextMap(), "damage")
}

func TestNarrator_DuelAndTournament(t *testing.T) {
	bus, logs := newNarratedBus(zapcore.InfoLevel)

	duel := &entities.Duel{
		Index:       1,
		FighterA:    "Punk",
		FighterB:    "Nefor",
		Winner:      "Nefor",
		Termination: entities.TerminationRoundLimit,
		Rounds:      10,
	}
	require.NoError(t, bus.Emit(&events.DuelConcludedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeDuelConcluded},
		Duel:      duel,
	}))

	tour := &entities.Tournament{ID: "t"}
	tour.Record(duel)
	require.NoError(t, bus.Emit(&events.TournamentCompletedEvent{
		BaseEvent:  events.BaseEvent{Type: events.EventTypeTournamentCompleted},
		Tournament: tour,
	}))

	over := logs.FilterMessage("fight over").All()
	require.Len(t, over, 1)
	assert.Equal(t, "round_limit", over[0].ContextMap()["termination"])
	assert.Equal(t, "Punk", over[0].ContextMap()["loser"])

	results := logs.FilterMessage("result").All()
	require.Len(t, results, 1)
	assert.Equal(t, "Nefor", results[0].ContextMap()["winner"])
}

func TestNarrator_HealthResetsAreDebug(t *testing.T) {
	bus, logs := newNarratedBus(zapcore.InfoLevel)

	require.NoError(t, bus.Emit(&events.HealthRestoredEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeHealthRestored, Actor: &entities.Character{Name: "Punk"}},
		Health:    16,
	}))
	assert.Equal(t, 0, logs.Len())

	bus, logs = newNarratedBus(zapcore.DebugLevel)
	require.NoError(t, bus.Emit(&events.HealthRestoredEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeHealthRestored, Actor: &entities.Character{Name: "Punk"}},
		Health:    16,
	}))
	assert.Equal(t, 1, logs.Len())
}
