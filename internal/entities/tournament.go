package entities

import (
	"sort"
	"time"
)

// FightResult is the externally visible record of one bout
type FightResult struct {
	FightIndex int    `json:"fight_index"`
	FighterA   string `json:"fighter_a"`
	FighterB   string `json:"fighter_b"`
	Winner     string `json:"winner"`
}

// Standing is a fighter's tally across the tournament
type Standing struct {
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

type Tournament struct {
	ID          string         `json:"id"`
	Roster      []string       `json:"roster"`
	Fights      []*FightResult `json:"fights"`
	Duels       []*Duel        `json:"duels"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt time.Time      `json:"completed_at,omitempty"`
}

// ExpectedFights is the number of unique pairs in a roster of n
func ExpectedFights(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Record appends a concluded duel and its public result
func (t *Tournament) Record(d *Duel) *FightResult {
	fr := &FightResult{
		FightIndex: len(t.Fights) + 1,
		FighterA:   d.FighterA,
		FighterB:   d.FighterB,
		Winner:     d.Winner,
	}
	t.Fights = append(t.Fights, fr)
	t.Duels = append(t.Duels, d)
	return fr
}

// IsComplete reports whether every pair has fought
func (t *Tournament) IsComplete() bool {
	return len(t.Fights) == ExpectedFights(len(t.Roster))
}

// Standings tallies wins and losses, most wins first. Ties keep roster order.
func (t *Tournament) Standings() []*Standing {
	byName := make(map[string]*Standing, len(t.Roster))
	out := make([]*Standing, 0, len(t.Roster))
	for _, name := range t.Roster {
		s := &Standing{Name: name}
		byName[name] = s
		out = append(out, s)
	}

	for _, f := range t.Fights {
		loser := f.FighterA
		if f.Winner == f.FighterA {
			loser = f.FighterB
		}
		if s, ok := byName[f.Winner]; ok {
			s.Wins++
		}
		if s, ok := byName[loser]; ok {
			s.Losses++
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Wins > out[j].Wins
	})
	return out
}
