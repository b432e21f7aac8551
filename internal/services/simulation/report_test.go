package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/brawl-tournament/internal/entities"
	"github.com/KirkDiggler/brawl-tournament/internal/testutils"
)

func TestNewReport(t *testing.T) {
	// In the fixture the earlier roster entry always wins
	report := newReport([]*entities.Tournament{
		testutils.CreateTestTournament("one", "a", "b", "c"),
		testutils.CreateTestTournament("two", "a", "b", "c"),
	})

	assert.Equal(t, 2, report.Runs)
	assert.Equal(t, 6, report.Fights)
	assert.Equal(t, map[string]int{"a": 4, "b": 2, "c": 0}, report.Wins)
	assert.Equal(t, 4, report.Appearances["c"])
	assert.Equal(t, map[string]int{"a": 2}, report.Championships)
	assert.Equal(t, map[entities.Termination]int{entities.TerminationKnockout: 6}, report.Terminations)
	assert.Equal(t, []string{"one", "two"}, report.TournamentIDs)

	assert.Equal(t, 1.0, report.WinRate("a"))
	assert.Equal(t, 0.5, report.WinRate("b"))
	assert.Equal(t, 0.0, report.WinRate("c"))
	assert.Equal(t, 0.0, report.WinRate("nobody"))

	ranking := report.Ranking()
	require.Len(t, ranking, 3)
	assert.Equal(t, "a", ranking[0].Name)
	assert.Equal(t, 0, ranking[0].Losses)
	assert.Equal(t, "c", ranking[2].Name)
	assert.Equal(t, 4, ranking[2].Losses)
	assert.Equal(t, "a", report.Leader())
}

func TestNewReport_SharedTopSpot(t *testing.T) {
	tour := &entities.Tournament{ID: "tie", Roster: []string{"x", "y"}}
	tour.Fights = []*entities.FightResult{}
	report := newReport([]*entities.Tournament{tour})

	// nobody has fought so everyone shares the top spot on zero wins
	assert.Equal(t, map[string]int{"x": 1, "y": 1}, report.Championships)
	assert.Equal(t, "", (&Report{}).Leader())
}
