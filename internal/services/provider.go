package services

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/brawl-tournament/internal/config"
	"github.com/KirkDiggler/brawl-tournament/internal/dice"
	"github.com/KirkDiggler/brawl-tournament/internal/events"
	"github.com/KirkDiggler/brawl-tournament/internal/repositories/tournaments"
	"github.com/KirkDiggler/brawl-tournament/internal/services/armory"
	"github.com/KirkDiggler/brawl-tournament/internal/services/roster"
	"github.com/KirkDiggler/brawl-tournament/internal/services/simulation"
	"github.com/KirkDiggler/brawl-tournament/internal/services/tournament"
)

// Provider holds all service instances
type Provider struct {
	ArmoryService     armory.Service
	RosterService     roster.Service
	TournamentService tournament.Service
	SimulationService simulation.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Config               *config.Config
	Presets              *config.Presets
	Roller               dice.Roller
	Bus                  *events.Bus
	TournamentRepository tournaments.Repository
	Logger               *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = config.Default()
	}

	presets := cfg.Presets
	if presets == nil {
		presets = config.DefaultPresets()
	}

	// Use in-memory repository if none provided
	repo := cfg.TournamentRepository
	if repo == nil {
		repo = tournaments.NewInMemoryRepository()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller(appCfg.Combat.Seed)
	}

	if err := appCfg.Combat.Validate(); err != nil {
		return nil, err
	}

	armorySvc, err := armory.NewService(presets)
	if err != nil {
		return nil, err
	}

	rosterSvc := roster.NewService(&roster.ServiceConfig{
		Armory: armorySvc,
		Roller: roller,
		Bus:    cfg.Bus,
		Combat: &appCfg.Combat,
		Logger: cfg.Logger,
	})

	tournamentSvc := tournament.NewService(&tournament.ServiceConfig{
		Roller:     roller,
		Bus:        cfg.Bus,
		Repository: repo,
		Combat:     &appCfg.Combat,
		Logger:     cfg.Logger,
	})

	simulationSvc := simulation.NewService(&simulation.ServiceConfig{
		Armory:     armorySvc,
		Fighters:   presets.Fighters,
		Combat:     &appCfg.Combat,
		Workers:    appCfg.Simulation.Workers,
		Bus:        cfg.Bus,
		Repository: repo,
		Logger:     cfg.Logger,
	})

	return &Provider{
		ArmoryService:     armorySvc,
		RosterService:     rosterSvc,
		TournamentService: tournamentSvc,
		SimulationService: simulationSvc,
	}, nil
}
