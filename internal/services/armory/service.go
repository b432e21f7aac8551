// Package armory owns the weapon catalog fighters are equipped from
package armory

import (
	"github.com/KirkDiggler/brawl-tournament/internal/config"
	"github.com/KirkDiggler/brawl-tournament/internal/entities"
	dnderr "github.com/KirkDiggler/brawl-tournament/internal/errors"
)

// Service looks up weapons by key
type Service interface {
	// Weapon returns the weapon for key, or the default weapon when the key
	// is unknown
	Weapon(key string) *entities.Weapon

	// Lookup returns the weapon for key or a not found error
	Lookup(key string) (*entities.Weapon, error)

	// Candidates returns the pair every fighter chooses between
	Candidates() []*entities.Weapon

	// Default returns the fallback weapon
	Default() *entities.Weapon

	// List returns every weapon in catalog order
	List() []*entities.Weapon
}

type service struct {
	byKey      map[string]*entities.Weapon
	ordered    []*entities.Weapon
	fallback   *entities.Weapon
	candidates []*entities.Weapon
}

// NewService builds the catalog. Every weapon definition goes through
// entities.NewWeapon so bad stats are rejected here.
func NewService(presets *config.Presets) (Service, error) {
	if presets == nil {
		return nil, dnderr.InvalidArgument("presets cannot be nil")
	}
	if err := presets.Validate(); err != nil {
		return nil, err
	}

	svc := &service{
		byKey: make(map[string]*entities.Weapon, len(presets.Weapons)),
	}

	for _, def := range presets.Weapons {
		w, err := entities.NewWeapon(def.Key, def.Name, def.Min, def.Max, def.Accuracy)
		if err != nil {
			return nil, err
		}
		svc.byKey[w.Key] = w
		svc.ordered = append(svc.ordered, w)
	}

	svc.fallback = svc.byKey[presets.DefaultWeapon]

	for _, key := range presets.Candidates {
		w, ok := svc.byKey[key]
		if !ok {
			return nil, dnderr.Validationf("candidate weapon %s is not defined", key)
		}
		svc.candidates = append(svc.candidates, w)
	}

	return svc, nil
}

func (s *service) Weapon(key string) *entities.Weapon {
	if w, ok := s.byKey[key]; ok {
		return w
	}
	return s.fallback
}

func (s *service) Lookup(key string) (*entities.Weapon, error) {
	w, ok := s.byKey[key]
	if !ok {
		return nil, dnderr.NotFoundf("weapon not found: %s", key)
	}
	return w, nil
}

func (s *service) Candidates() []*entities.Weapon {
	return append([]*entities.Weapon(nil), s.candidates...)
}

func (s *service) Default() *entities.Weapon {
	return s.fallback
}

func (s *service) List() []*entities.Weapon {
	return append([]*entities.Weapon(nil), s.ordered...)
}
