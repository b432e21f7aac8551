package entities

import "github.com/KirkDiggler/brawl-tournament/internal/entities/attack"

// DuelState tracks a bout through its lifecycle
type DuelState string

const (
	DuelStateNotStarted DuelState = "not_started"
	DuelStateInProgress DuelState = "in_progress"
	DuelStateConcluded  DuelState = "concluded"
)

// Termination records why a bout ended
type Termination string

const (
	// TerminationKnockout means exactly one fighter was left standing
	TerminationKnockout Termination = "knockout"
	// TerminationBothDown means neither fighter was standing; winner by coin flip
	TerminationBothDown Termination = "both_down"
	// TerminationRoundLimit means both were standing at the cap; winner by coin flip
	TerminationRoundLimit Termination = "round_limit"
)

// Duel is one bout between two fighters
type Duel struct {
	Index       int         `json:"index"`
	FighterA    string      `json:"fighter_a"`
	FighterB    string      `json:"fighter_b"`
	Winner      string      `json:"winner,omitempty"`
	State       DuelState   `json:"state"`
	Termination Termination `json:"termination,omitempty"`
	Rounds      int         `json:"rounds"`

	Attacks []*attack.Result `json:"-"`
}

// NewDuel creates a bout that has not started yet
func NewDuel(index int, a, b *Character) *Duel {
	return &Duel{
		Index:    index,
		FighterA: a.Name,
		FighterB: b.Name,
		State:    DuelStateNotStarted,
	}
}

// Start moves the duel into progress
func (d *Duel) Start() {
	if d.State == DuelStateNotStarted {
		d.State = DuelStateInProgress
	}
}

// Conclude records the winner. It is a no-op once the duel has concluded.
func (d *Duel) Conclude(winner string, why Termination) {
	if d.State == DuelStateConcluded {
		return
	}
	d.State = DuelStateConcluded
	d.Winner = winner
	d.Termination = why
}

// IsDecisive reports whether the winner was earned rather than flipped
func (d *Duel) IsDecisive() bool {
	return d.Termination == TerminationKnockout
}

// Loser returns the fighter who did not win
func (d *Duel) Loser() string {
	switch d.Winner {
	case d.FighterA:
		return d.FighterB
	case d.FighterB:
		return d.FighterA
	}
	return ""
}
