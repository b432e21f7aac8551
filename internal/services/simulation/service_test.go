package simulation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/brawl-tournament/internal/config"
	"github.com/KirkDiggler/brawl-tournament/internal/dice"
	mockdice "github.com/KirkDiggler/brawl-tournament/internal/dice/mock"
	dnderr "github.com/KirkDiggler/brawl-tournament/internal/errors"
	"github.com/KirkDiggler/brawl-tournament/internal/events"
	"github.com/KirkDiggler/brawl-tournament/internal/repositories/tournaments"
	"github.com/KirkDiggler/brawl-tournament/internal/services/armory"
	"github.com/KirkDiggler/brawl-tournament/internal/services/simulation"
)

func newSimulation(t *testing.T, seed int64, workers int, repo tournaments.Repository) simulation.Service {
	t.Helper()
	presets := config.DefaultPresets()
	a, err := armory.NewService(presets)
	require.NoError(t, err)

	combat := config.DefaultCombat()
	combat.Seed = seed

	return simulation.NewService(&simulation.ServiceConfig{
		Armory:     a,
		Fighters:   presets.Fighters,
		Combat:     &combat,
		Workers:    workers,
		Repository: repo,
	})
}

func TestRun_AggregatesIndependentTournaments(t *testing.T) {
	repo := tournaments.NewInMemoryRepository()
	svc := newSimulation(t, 42, 2, repo)

	report, err := svc.Run(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 5, report.Runs)
	assert.Equal(t, 30, report.Fights)
	assert.Len(t, report.TournamentIDs, 5)

	total := 0
	for _, w := range report.Wins {
		total += w
	}
	assert.Equal(t, report.Fights, total)

	for _, name := range []string{"Punk", "Nefor", "Normis", "Pickme"} {
		assert.Equal(t, 15, report.Appearances[name], name)
		rate := report.WinRate(name)
		assert.GreaterOrEqual(t, rate, 0.0)
		assert.LessOrEqual(t, rate, 1.0)
	}

	terminations := 0
	for _, n := range report.Terminations {
		terminations += n
	}
	assert.Equal(t, report.Fights, terminations)

	assert.Len(t, report.Ranking(), 4)
	assert.NotEmpty(t, report.Leader())

	stored, err := repo.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, stored, 5)
}

func TestRun_SameSeedSameResults(t *testing.T) {
	first, err := newSimulation(t, 7, 3, nil).Run(context.Background(), 4)
	require.NoError(t, err)

	second, err := newSimulation(t, 7, 1, nil).Run(context.Background(), 4)
	require.NoError(t, err)

	assert.Equal(t, first.Wins, second.Wins)
	assert.Equal(t, first.Terminations, second.Terminations)
	assert.Equal(t, first.Championships, second.Championships)
}

func TestRun_InvalidRuns(t *testing.T) {
	_, err := newSimulation(t, 1, 1, nil).Run(context.Background(), 0)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestRun_FailingRunStopsBatch(t *testing.T) {
	presets := config.DefaultPresets()
	a, err := armory.NewService(presets)
	require.NoError(t, err)

	svc := simulation.NewService(&simulation.ServiceConfig{
		Armory:   a,
		Fighters: presets.Fighters,
		Rollers: func(run int) dice.Roller {
			if run == 1 {
				return mockdice.NewManualMockRoller()
			}
			return dice.NewRandomRoller(int64(run + 1))
		},
	})

	_, err = svc.Run(context.Background(), 3)
	require.Error(t, err)
	assert.True(t, dnderr.IsRollsExhausted(err))
}

func TestRun_SharedBusSeesEveryTournament(t *testing.T) {
	presets := config.DefaultPresets()
	a, err := armory.NewService(presets)
	require.NoError(t, err)

	bus := events.NewBus(nil)
	completed := make(chan string, 8)
	bus.Subscribe(events.EventTypeTournamentCompleted, &events.ListenerFunc{
		Name:  "completed",
		Order: events.PriorityDefault,
		Callback: func(e events.Event) error {
			completed <- e.(*events.TournamentCompletedEvent).Tournament.ID
			return nil
		},
	})

	svc := simulation.NewService(&simulation.ServiceConfig{
		Armory:   a,
		Fighters: presets.Fighters,
		Workers:  4,
		Rollers:  simulation.SeededRollers(99),
		Bus:      bus,
	})

	report, err := svc.Run(context.Background(), 6)
	require.NoError(t, err)
	close(completed)

	var ids []string
	for id := range completed {
		ids = append(ids, id)
	}
	assert.ElementsMatch(t, report.TournamentIDs, ids)
}

func TestNewService_PanicsWithoutArmory(t *testing.T) {
	assert.Panics(t, func() {
		simulation.NewService(&simulation.ServiceConfig{})
	})
}

func TestNewService_PanicsOnZeroHealthBand(t *testing.T) {
	a, err := armory.NewService(config.DefaultPresets())
	require.NoError(t, err)

	combat := config.DefaultCombat()
	combat.HealthResetMin, combat.HealthResetMax = 0, 0
	assert.Panics(t, func() {
		simulation.NewService(&simulation.ServiceConfig{Armory: a, Combat: &combat})
	})
}
