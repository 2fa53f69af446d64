package config

import (
	"os"
	"strconv"

	arenaerr "github.com/KirkDiggler/duel-arena/internal/errors"
)

// Config holds all configuration for the arena tooling
type Config struct {
	Log        LogConfig
	Catalog    CatalogConfig
	Simulation SimulationConfig
}

// LogConfig controls the slog handler
type LogConfig struct {
	Format string // text or json
	Level  string
}

// CatalogConfig points at an optional YAML catalog that replaces the embedded one
type CatalogConfig struct {
	Path string
}

// SimulationConfig holds knobs for batch resolution runs
type SimulationConfig struct {
	Seed    int64 // 0 means seed from the clock
	Workers int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Log: LogConfig{
			Format: getEnvOrDefault("ARENA_LOG_FORMAT", "text"),
			Level:  getEnvOrDefault("ARENA_LOG_LEVEL", "info"),
		},
		Catalog: CatalogConfig{
			Path: os.Getenv("ARENA_CATALOG_PATH"),
		},
		Simulation: SimulationConfig{
			Seed:    getEnvAsInt64OrDefault("ARENA_SEED", 0),
			Workers: getEnvAsIntOrDefault("ARENA_SIM_WORKERS", 4),
		},
	}

	switch cfg.Log.Format {
	case "text", "json":
	default:
		return nil, arenaerr.InvalidArgumentf("ARENA_LOG_FORMAT must be text or json, got %q", cfg.Log.Format)
	}
	if cfg.Simulation.Workers < 1 {
		return nil, arenaerr.InvalidArgumentf("ARENA_SIM_WORKERS must be positive, got %d", cfg.Simulation.Workers)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
