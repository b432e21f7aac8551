package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/brawl-tournament/internal/config"
	"github.com/KirkDiggler/brawl-tournament/internal/entities"
	"github.com/KirkDiggler/brawl-tournament/internal/events"
	"github.com/KirkDiggler/brawl-tournament/internal/handlers/rest"
	"github.com/KirkDiggler/brawl-tournament/internal/metrics"
	"github.com/KirkDiggler/brawl-tournament/internal/narration"
	"github.com/KirkDiggler/brawl-tournament/internal/repositories/tournaments"
	"github.com/KirkDiggler/brawl-tournament/internal/services"
	"github.com/KirkDiggler/brawl-tournament/internal/services/simulation"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("tournament failed", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.TimeKey = ""
	return zcfg.Build()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	presets := config.DefaultPresets()
	if cfg.Presets.File != "" {
		loaded, err := config.LoadPresets(cfg.Presets.File)
		if err != nil {
			return err
		}
		presets = loaded
		logger.Info("loaded presets", zap.String("file", cfg.Presets.File))
	}

	bus := events.NewBus(logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics.NewRecorder(registry).Subscribe(bus)

	// A batch would interleave commentary from every run
	if cfg.Log.Narrate && cfg.Simulation.Runs == 1 {
		narration.NewNarrator(logger).Subscribe(bus)
	}

	providerConfig := &services.ProviderConfig{
		Config:  cfg,
		Presets: presets,
		Bus:     bus,
		Logger:  logger,
	}

	if cfg.Redis.URL != "" {
		client, err := connectRedis(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Warn("Falling back to in-memory repository", zap.Error(err))
		} else {
			defer func() {
				if err := client.Close(); err != nil {
					logger.Warn("Failed to close Redis connection", zap.Error(err))
				}
			}()
			providerConfig.TournamentRepository = tournaments.NewRedis(client)
			logger.Info("Using Redis for persistence")
		}
	}

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		return err
	}

	var weapons []string
	for _, w := range provider.ArmoryService.List() {
		weapons = append(weapons, w.Key)
	}
	logger.Info("armory ready",
		zap.Strings("weapons", weapons),
		zap.String("default", provider.ArmoryService.Default().Key))

	if cfg.Simulation.Runs == 1 {
		err = runSingle(ctx, provider, presets)
	} else {
		err = runBatch(ctx, provider, cfg.Simulation.Runs)
	}
	if err != nil {
		return err
	}

	if cfg.HTTP.Addr == "" {
		return nil
	}
	return serve(ctx, cfg.HTTP.Addr, rest.NewHandler(&rest.HandlerConfig{
		TournamentService: provider.TournamentService,
		Gatherer:          registry,
		Logger:            logger,
	}), logger)
}

func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

func runSingle(ctx context.Context, provider *services.Provider, presets *config.Presets) error {
	fighters, err := provider.RosterService.Build(presets.Fighters)
	if err != nil {
		return err
	}
	if err := provider.RosterService.Equip(ctx, fighters); err != nil {
		return err
	}

	t, err := provider.TournamentService.RunTournament(ctx, fighters)
	if err != nil {
		return err
	}

	printTournament(t)
	return nil
}

func printTournament(t *entities.Tournament) {
	fmt.Printf("\nTournament %s results\n", t.ID)
	for _, f := range t.Fights {
		fmt.Printf("Fight %d: %s\n", f.FightIndex, f.Winner)
	}

	fmt.Println("\nStandings")
	for _, s := range t.Standings() {
		fmt.Printf("%-10s %d-%d\n", s.Name, s.Wins, s.Losses)
	}
}

func runBatch(ctx context.Context, provider *services.Provider, runs int) error {
	report, err := provider.SimulationService.Run(ctx, runs)
	if err != nil {
		return err
	}

	printReport(report)
	return nil
}

func printReport(r *simulation.Report) {
	fmt.Printf("\n%d tournaments, %d fights\n", r.Runs, r.Fights)
	for _, s := range r.Ranking() {
		fmt.Printf("%-10s wins %5d  rate %5.1f%%  titles %d\n",
			s.Name, s.Wins, r.WinRate(s.Name)*100, r.Championships[s.Name])
	}
	for why, n := range r.Terminations {
		fmt.Printf("%-12s %d\n", why, n)
	}
}

func serve(ctx context.Context, addr string, handler *rest.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Serving results and metrics", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
