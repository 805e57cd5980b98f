package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/skovand/dragon-cave/pkg/level"
	"github.com/skovand/dragon-cave/pkg/session"
)

// HighScore is one row on the treasure leaderboard.
type HighScore struct {
	SessionID string `json:"session_id"`
	Score     int    `json:"score"`
}

// Storage persists sessions and high scores, and serves level data.
// Sessions and scores live in Redis; levels come from the filesystem
// with the built-in campaign as fallback.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Session operations. LoadSession returns (nil, nil) when the
	// session does not exist.
	SaveSession(ctx context.Context, s *session.Session) error
	LoadSession(ctx context.Context, id uuid.UUID) (*session.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// High score operations. RecordScore keeps only a session's best.
	RecordScore(ctx context.Context, s *session.Session) error
	TopScores(ctx context.Context, n int) ([]HighScore, error)

	// Level operations (filesystem-backed)
	ListLevels(ctx context.Context) ([]level.Level, error)
	GetLevel(ctx context.Context, filename string) (*level.Level, error)
}
