// Package uuid hands out tournament IDs behind an interface tests can replace
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator produces unique IDs
type Generator interface {
	New() string
}

type googleGenerator struct{}

// NewGoogleUUIDGenerator returns a Generator backed by random v4 UUIDs
func NewGoogleUUIDGenerator() Generator {
	return googleGenerator{}
}

func (googleGenerator) New() string {
	return uuid.NewString()
}
