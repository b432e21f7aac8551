package testutils

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/brawl-tournament/internal/entities"
)

// CreateTestWeapon creates a test weapon entity
func CreateTestWeapon(key string, minDamage, maxDamage int, hitChance float64) *entities.Weapon {
	return &entities.Weapon{
		Key:       key,
		Name:      key,
		MinDamage: minDamage,
		MaxDamage: maxDamage,
		HitChance: hitChance,
	}
}

// CreateTestFighter creates a full-health fighter with no dodge or crit
// so scripted rolls stay short
func CreateTestFighter(name string, health, armor int, weapon *entities.Weapon) *entities.Character {
	return &entities.Character{
		Name:      name,
		MaxHealth: health,
		Health:    health,
		Armor:     armor,
		Weapon:    weapon,
	}
}

// CreateTestTournament creates a finished tournament where the earlier
// roster entry wins every bout
func CreateTestTournament(id string, roster ...string) *entities.Tournament {
	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	t := &entities.Tournament{
		ID:        id,
		Roster:    roster,
		StartedAt: started,
	}

	for i := 0; i < len(roster); i++ {
		for j := i + 1; j < len(roster); j++ {
			d := &entities.Duel{
				Index:    len(t.Fights) + 1,
				FighterA: roster[i],
				FighterB: roster[j],
				State:    entities.DuelStateInProgress,
				Rounds:   1,
			}
			d.Conclude(roster[i], entities.TerminationKnockout)
			t.Record(d)
		}
	}

	t.CompletedAt = started.Add(time.Duration(len(t.Fights)) * time.Second)
	return t
}

// FighterNames generates n distinct fighter names
func FighterNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("fighter-%d", i+1)
	}
	return names
}
