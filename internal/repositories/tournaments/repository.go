package tournaments

//go:generate mockgen -destination=mock/mock_repository.go -package=mocktournaments -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/brawl-tournament/internal/entities"
)

// Repository defines the interface for tournament storage operations
type Repository interface {
	// Create stores a finished tournament
	Create(ctx context.Context, tournament *entities.Tournament) error

	// Get retrieves a tournament by ID
	Get(ctx context.Context, id string) (*entities.Tournament, error)

	// ListRecent returns up to limit tournaments, newest first
	ListRecent(ctx context.Context, limit int) ([]*entities.Tournament, error)

	// Delete removes a tournament
	Delete(ctx context.Context, id string) error
}
