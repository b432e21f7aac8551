// Package simulation runs batches of independent tournaments and tallies
// how often each fighter comes out on top
package simulation

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/brawl-tournament/internal/config"
	"github.com/KirkDiggler/brawl-tournament/internal/dice"
	"github.com/KirkDiggler/brawl-tournament/internal/entities"
	dnderr "github.com/KirkDiggler/brawl-tournament/internal/errors"
	"github.com/KirkDiggler/brawl-tournament/internal/events"
	"github.com/KirkDiggler/brawl-tournament/internal/repositories/tournaments"
	"github.com/KirkDiggler/brawl-tournament/internal/services/armory"
	"github.com/KirkDiggler/brawl-tournament/internal/services/roster"
	"github.com/KirkDiggler/brawl-tournament/internal/services/tournament"
)

// RollerFactory returns the roller for one run
type RollerFactory func(run int) dice.Roller

// Service runs tournaments in bulk
type Service interface {
	// Run plays runs independent tournaments. Each run builds and equips
	// its own roster with its own roller, so runs share no fighter state.
	Run(ctx context.Context, runs int) (*Report, error)
}

type service struct {
	armory     armory.Service
	fighters   []config.FighterDef
	combat     config.CombatConfig
	workers    int
	rollers    RollerFactory
	bus        *events.Bus
	repository tournaments.Repository
	logger     *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Armory   armory.Service
	Fighters []config.FighterDef
	// Combat defaults to config.DefaultCombat()
	Combat *config.CombatConfig
	// Workers caps how many tournaments run at once; below 1 means 1
	Workers int
	// Rollers defaults to seeded rollers, run i using Combat.Seed+i
	Rollers    RollerFactory
	Bus        *events.Bus
	Repository tournaments.Repository
	Logger     *zap.Logger
}

// NewService creates a new simulation service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Armory == nil {
		panic("armory service is required")
	}

	svc := &service{
		armory:     cfg.Armory,
		fighters:   cfg.Fighters,
		combat:     config.DefaultCombat(),
		workers:    cfg.Workers,
		rollers:    cfg.Rollers,
		bus:        cfg.Bus,
		repository: cfg.Repository,
		logger:     cfg.Logger,
	}

	if cfg.Combat != nil {
		svc.combat = *cfg.Combat
	}
	if err := svc.combat.Validate(); err != nil {
		panic(err.Error())
	}
	if svc.workers < 1 {
		svc.workers = 1
	}
	if svc.repository == nil {
		svc.repository = tournaments.NewInMemoryRepository()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	if svc.rollers == nil {
		svc.rollers = SeededRollers(svc.combat.Seed)
	}

	return svc
}

// SeededRollers gives run i the seed base+i. A zero base is replaced by
// the current time so unseeded batches still differ run to run.
func SeededRollers(base int64) RollerFactory {
	if base == 0 {
		base = time.Now().UnixNano()
	}
	return func(run int) dice.Roller {
		return dice.NewRandomRoller(base + int64(run))
	}
}

func (s *service) Run(ctx context.Context, runs int) (*Report, error) {
	if runs < 1 {
		return nil, dnderr.InvalidArgumentf("runs %d must be at least 1", runs)
	}

	results := make([]*entities.Tournament, runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := 0; i < runs; i++ {
		g.Go(func() error {
			t, err := s.runOne(ctx, i)
			if err != nil {
				return dnderr.Wrapf(err, "run %d", i)
			}
			results[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := newReport(results)
	s.logger.Info("simulation finished",
		zap.Int("runs", report.Runs),
		zap.Int("fights", report.Fights),
		zap.String("leader", report.Leader()))

	return report, nil
}

func (s *service) runOne(ctx context.Context, run int) (*entities.Tournament, error) {
	roller := s.rollers(run)

	rosterSvc := roster.NewService(&roster.ServiceConfig{
		Armory: s.armory,
		Roller: roller,
		Bus:    s.bus,
		Combat: &s.combat,
		Logger: s.logger,
	})

	fighters, err := rosterSvc.Build(s.fighters)
	if err != nil {
		return nil, err
	}
	if err := rosterSvc.Equip(ctx, fighters); err != nil {
		return nil, err
	}

	tournamentSvc := tournament.NewService(&tournament.ServiceConfig{
		Roller:     roller,
		Bus:        s.bus,
		Repository: s.repository,
		Combat:     &s.combat,
		Logger:     s.logger,
	})

	return tournamentSvc.RunTournament(ctx, fighters)
}

// Report aggregates a batch of tournaments
type Report struct {
	Runs          int                          `json:"runs"`
	Fights        int                          `json:"fights"`
	Wins          map[string]int               `json:"wins"`
	Appearances   map[string]int               `json:"appearances"`
	Championships map[string]int               `json:"championships"`
	Terminations  map[entities.Termination]int `json:"terminations"`
	TournamentIDs []string                     `json:"tournament_ids"`
}

func newReport(results []*entities.Tournament) *Report {
	r := &Report{
		Runs:          len(results),
		Wins:          make(map[string]int),
		Appearances:   make(map[string]int),
		Championships: make(map[string]int),
		Terminations:  make(map[entities.Termination]int),
	}

	for _, t := range results {
		r.TournamentIDs = append(r.TournamentIDs, t.ID)
		r.Fights += len(t.Fights)

		for _, name := range t.Roster {
			r.Wins[name] += 0
		}
		for _, f := range t.Fights {
			r.Wins[f.Winner]++
			r.Appearances[f.FighterA]++
			r.Appearances[f.FighterB]++
		}
		for _, d := range t.Duels {
			r.Terminations[d.Termination]++
		}

		// A shared top spot counts as a championship for everyone on it
		standings := t.Standings()
		if len(standings) == 0 {
			continue
		}
		top := standings[0].Wins
		for _, st := range standings {
			if st.Wins != top {
				break
			}
			r.Championships[st.Name]++
		}
	}

	return r
}

// WinRate is the share of name's fights that name won
func (r *Report) WinRate(name string) float64 {
	fought := r.Appearances[name]
	if fought == 0 {
		return 0
	}
	return float64(r.Wins[name]) / float64(fought)
}

// Ranking lists fighters by total wins, then by name
func (r *Report) Ranking() []*entities.Standing {
	out := make([]*entities.Standing, 0, len(r.Wins))
	for name, wins := range r.Wins {
		out = append(out, &entities.Standing{
			Name:   name,
			Wins:   wins,
			Losses: r.Appearances[name] - wins,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Leader is the fighter with the most wins, or "" for an empty report
func (r *Report) Leader() string {
	ranking := r.Ranking()
	if len(ranking) == 0 {
		return ""
	}
	return ranking[0].Name
}
