package events

import (
	"github.com/KirkDiggler/brawl-tournament/internal/entities"
)

// EventType represents the type of tournament event
type EventType string

// Event is the base interface for all tournament events
type Event interface {
	GetType() EventType
	GetActor() *entities.Character
	GetTarget() *entities.Character
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	Actor     *entities.Character
	Target    *entities.Character
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType             { return e.Type }
func (e *BaseEvent) GetActor() *entities.Character  { return e.Actor }
func (e *BaseEvent) GetTarget() *entities.Character { return e.Target }
func (e *BaseEvent) IsCancelled() bool              { return e.Cancelled }
func (e *BaseEvent) Cancel()                        { e.Cancelled = true }
