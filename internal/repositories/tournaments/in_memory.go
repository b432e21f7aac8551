package tournaments

import (
	"context"
	"sync"

	"github.com/KirkDiggler/brawl-tournament/internal/entities"
	dnderr "github.com/KirkDiggler/brawl-tournament/internal/errors"
)

type inMemoryRepository struct {
	mu          sync.RWMutex
	tournaments map[string]*entities.Tournament
	order       []string // insertion order, oldest first
}

// NewInMemoryRepository creates a new in-memory tournament repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		tournaments: make(map[string]*entities.Tournament),
	}
}

func (r *inMemoryRepository) Create(ctx context.Context, tournament *entities.Tournament) error {
	if tournament == nil {
		return dnderr.InvalidArgument("tournament cannot be nil")
	}
	if tournament.ID == "" {
		return dnderr.InvalidArgument("tournament ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tournaments[tournament.ID]; exists {
		return dnderr.AlreadyExistsf("tournament with ID %s already exists", tournament.ID)
	}

	r.tournaments[tournament.ID] = tournament
	r.order = append(r.order, tournament.ID)
	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, id string) (*entities.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tournament, exists := r.tournaments[id]
	if !exists {
		return nil, dnderr.NotFoundf("tournament not found: %s", id)
	}
	return tournament, nil
}

func (r *inMemoryRepository) ListRecent(ctx context.Context, limit int) ([]*entities.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.order) {
		limit = len(r.order)
	}

	out := make([]*entities.Tournament, 0, limit)
	for i := len(r.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.tournaments[r.order[i]])
	}
	return out, nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tournaments[id]; !exists {
		return dnderr.NotFoundf("tournament not found: %s", id)
	}

	delete(r.tournaments, id)
	for i, tid := range r.order {
		if tid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
