package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	dnderr "github.com/KirkDiggler/brawl-tournament/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Combat     CombatConfig
	Presets    PresetsConfig
	Redis      RedisConfig
	HTTP       HTTPConfig
	Log        LogConfig
	Simulation SimulationConfig
}

// CombatConfig holds the numbers the resolver and driver read
type CombatConfig struct {
	MaxHealth          int     `env:"BRAWL_MAX_HEALTH"          envDefault:"20"`
	MaxRounds          int     `env:"BRAWL_MAX_ROUNDS"          envDefault:"10"`
	CriticalMultiplier float64 `env:"BRAWL_CRITICAL_MULTIPLIER" envDefault:"1.5"`
	CriticalChance     float64 `env:"BRAWL_CRITICAL_CHANCE"     envDefault:"0.2"`
	BaseArmor          int     `env:"BRAWL_BASE_ARMOR"          envDefault:"2"`
	HealthResetMin     int     `env:"BRAWL_HEALTH_RESET_MIN"    envDefault:"15"`
	HealthResetMax     int     `env:"BRAWL_HEALTH_RESET_MAX"    envDefault:"17"`
	Seed               int64   `env:"BRAWL_SEED"`
}

// PresetsConfig points at the roster and weapon presets file
type PresetsConfig struct {
	// File is a YAML presets file; empty means the built-in presets
	File string `env:"BRAWL_ROSTER_FILE"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL is optional; without it tournaments are kept in memory
	URL string `env:"BRAWL_REDIS_URL"`
}

// HTTPConfig holds the metrics/results listener configuration
type HTTPConfig struct {
	// Addr is optional; without it no listener is started
	Addr string `env:"BRAWL_HTTP_ADDR"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `env:"BRAWL_LOG_LEVEL" envDefault:"info"`
	// Narrate logs every round and attack
	Narrate bool `env:"BRAWL_NARRATE" envDefault:"true"`
}

// SimulationConfig controls batch runs of independent tournaments
type SimulationConfig struct {
	Runs    int `env:"BRAWL_SIMULATION_RUNS"    envDefault:"1"`
	Workers int `env:"BRAWL_SIMULATION_WORKERS" envDefault:"4"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration Load produces with an empty environment
func Default() *Config {
	return &Config{
		Combat:     DefaultCombat(),
		Log:        LogConfig{Level: "info", Narrate: true},
		Simulation: SimulationConfig{Runs: 1, Workers: 4},
	}
}

// DefaultCombat returns the stock combat numbers
func DefaultCombat() CombatConfig {
	return CombatConfig{
		MaxHealth:          20,
		MaxRounds:          10,
		CriticalMultiplier: 1.5,
		CriticalChance:     0.2,
		BaseArmor:          2,
		HealthResetMin:     15,
		HealthResetMax:     17,
	}
}

// Validate rejects settings the combat model cannot run with
func (c *Config) Validate() error {
	if err := c.Combat.Validate(); err != nil {
		return err
	}
	if c.Simulation.Runs < 1 {
		return dnderr.Validationf("simulation runs %d must be at least 1", c.Simulation.Runs)
	}
	if c.Simulation.Workers < 1 {
		return dnderr.Validationf("simulation workers %d must be at least 1", c.Simulation.Workers)
	}
	return nil
}

// Validate rejects combat numbers the model cannot run with
func (c CombatConfig) Validate() error {
	if c.MaxRounds < 1 {
		return dnderr.Validationf("max rounds %d must be at least 1", c.MaxRounds)
	}
	if c.MaxHealth < 1 {
		return dnderr.Validationf("max health %d must be positive", c.MaxHealth)
	}
	if c.CriticalMultiplier < 1 {
		return dnderr.Validationf("critical multiplier %v below 1", c.CriticalMultiplier)
	}
	if c.CriticalChance < 0 || c.CriticalChance > 1 {
		return dnderr.Validationf("critical chance %v outside [0,1]", c.CriticalChance)
	}
	if c.BaseArmor < 0 {
		return dnderr.Validationf("base armor %d is negative", c.BaseArmor)
	}
	if c.HealthResetMin < 1 || c.HealthResetMax < c.HealthResetMin {
		return dnderr.Validationf("health reset band [%d,%d] is invalid", c.HealthResetMin, c.HealthResetMax)
	}
	if c.HealthResetMax > c.MaxHealth {
		return dnderr.Validationf("health reset max %d above health cap %d", c.HealthResetMax, c.MaxHealth)
	}
	return nil
}
