// Package config loads game settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/skovand/dragon-cave/pkg/level"
)

type Config struct {
	Environment string     // "development" or "production"
	LogLevel    slog.Level // minimum level for the game log
	LogFile     string     // log destination; the TUI owns stdout
	DataDir     string     // directory holding custom level files
	RedisURL    string     // host:port for score/session persistence; empty disables
	Dragons     int        // default dragon count on the title screen
}

func Load() (*Config, error) {
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogFile:     getEnv("LOG_FILE", "dragon-cave.log"),
		DataDir:     getEnv("DATA_DIR", "./data"),
		RedisURL:    getEnv("REDIS_URL", ""),
		Dragons:     1,
	}

	if v := os.Getenv("DRAGONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DRAGONS value %q: %w", v, err)
		}
		if n < 1 || n > level.MaxDragons {
			return nil, fmt.Errorf("DRAGONS must be between 1 and %d, got %d", level.MaxDragons, n)
		}
		cfg.Dragons = n
	}

	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
