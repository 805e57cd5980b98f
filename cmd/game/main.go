package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skovand/dragon-cave/internal/config"
	"github.com/skovand/dragon-cave/internal/logger"
	"github.com/skovand/dragon-cave/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logFile.Close() // Ignore error in defer
	}()
	log := logger.Setup(cfg, logFile)

	store := newStorage(cfg, log)
	defer func() {
		_ = store.Close() // Ignore error in defer
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	levels, err := store.ListLevels(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load levels: %v\n", err)
		os.Exit(1)
	}
	log.Info("Levels loaded", "count", len(levels))

	p := tea.NewProgram(NewGameUI(cfg, store, levels, log),
		tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// newStorage connects to Redis when configured, falling back to
// in-memory storage so the game stays playable offline.
func newStorage(cfg *config.Config, log *slog.Logger) storage.Storage {
	if cfg.RedisURL == "" {
		log.Info("No Redis configured, scores will not persist")
		return storage.NewMemoryStorage(cfg.DataDir)
	}

	rs := storage.NewRedisStorage(cfg.RedisURL, cfg.DataDir)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rs.WaitForConnection(ctx, 3*time.Second, log); err != nil {
		logger.WithError(log, err).Warn("Redis unavailable, falling back to in-memory storage")
		_ = rs.Close()
		return storage.NewMemoryStorage(cfg.DataDir)
	}
	log.Info("Connected to Redis", "addr", cfg.RedisURL)
	return rs
}
