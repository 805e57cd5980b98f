package storage

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skovand/dragon-cave/pkg/level"
	"github.com/skovand/dragon-cave/pkg/session"
)

// MemoryStorage is an in-memory Storage. It backs offline play when no
// Redis is configured, and doubles as the test fake.
type MemoryStorage struct {
	mu        sync.RWMutex
	sessions  map[uuid.UUID]*session.Session
	scores    map[string]int
	dataDir   string
	pingError error
}

var _ Storage = (*MemoryStorage)(nil)

func NewMemoryStorage(dataDir string) *MemoryStorage {
	return &MemoryStorage{
		sessions: make(map[uuid.UUID]*session.Session),
		scores:   make(map[string]int),
		dataDir:  dataDir,
	}
}

// SetPingError makes Ping fail, for testing degraded-storage paths.
func (m *MemoryStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetPingSuccess restores a healthy Ping.
func (m *MemoryStorage) SetPingSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = nil
}

func (m *MemoryStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MemoryStorage) Close() error {
	return nil
}

func (m *MemoryStorage) WaitForConnection(ctx context.Context, timeout time.Duration, logger *slog.Logger) error {
	return m.Ping(ctx)
}

func (m *MemoryStorage) SaveSession(ctx context.Context, s *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *s
	m.sessions[s.ID] = &copied
	return nil
}

func (m *MemoryStorage) LoadSession(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil // Session not found
	}
	copied := *s
	return &copied, nil
}

func (m *MemoryStorage) DeleteSession(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStorage) RecordScore(ctx context.Context, s *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[s.ID.String()] = s.TotalScore
	return nil
}

func (m *MemoryStorage) TopScores(ctx context.Context, n int) ([]HighScore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	scores := make([]HighScore, 0, len(m.scores))
	for id, score := range m.scores {
		scores = append(scores, HighScore{SessionID: id, Score: score})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].SessionID < scores[j].SessionID
	})
	if n >= 0 && n < len(scores) {
		scores = scores[:n]
	}
	return scores, nil
}

func (m *MemoryStorage) ListLevels(ctx context.Context) ([]level.Level, error) {
	return loadLevelDir(m.dataDir)
}

func (m *MemoryStorage) GetLevel(ctx context.Context, filename string) (*level.Level, error) {
	return loadLevelFile(m.dataDir, filename)
}
