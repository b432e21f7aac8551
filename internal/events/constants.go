package events

// Event type constants
const (
	// Setup
	EventTypeWeaponChosen EventType = "weapon_chosen"

	// Duel flow
	EventTypeDuelStarted    EventType = "duel_started"
	EventTypeRoundStarted   EventType = "round_started"
	EventTypeAttackResolved EventType = "attack_resolved"
	EventTypeDuelConcluded  EventType = "duel_concluded"

	// Between bouts
	EventTypeHealthRestored EventType = "health_restored"

	EventTypeTournamentCompleted EventType = "tournament_completed"
)

// AllEventTypes lists every event the tournament emits
var AllEventTypes = []EventType{
	EventTypeWeaponChosen,
	EventTypeDuelStarted,
	EventTypeRoundStarted,
	EventTypeAttackResolved,
	EventTypeDuelConcluded,
	EventTypeHealthRestored,
	EventTypeTournamentCompleted,
}

// Priority levels for listener ordering
const (
	PriorityMetrics   = 100
	PriorityNarration = 200
	PriorityDefault   = 300
)
