package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/skovand/dragon-cave/pkg/level"
	"github.com/skovand/dragon-cave/pkg/session"
)

const (
	sessionKeyPrefix = "session:"
	highScoreKey     = "highscores"

	// Abandoned runs expire after a day.
	sessionTTL = 24 * time.Hour
)

// RedisStorage keeps sessions and high scores in Redis and serves
// levels from the data directory.
type RedisStorage struct {
	client  *redis.Client
	dataDir string
}

var _ Storage = (*RedisStorage)(nil)

func NewRedisStorage(redisAddr, dataDir string) *RedisStorage {
	client := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	return &RedisStorage{
		client:  client,
		dataDir: dataDir,
	}
}

func (rs *RedisStorage) Ping(ctx context.Context) error {
	return rs.client.Ping(ctx).Err()
}

func (rs *RedisStorage) Close() error {
	return rs.client.Close()
}

// WaitForConnection polls Redis until it responds or the timeout
// elapses. Used at startup so a slow Redis doesn't fail the launch.
func (rs *RedisStorage) WaitForConnection(ctx context.Context, timeout time.Duration, logger *slog.Logger) error {
	deadline := time.Now().Add(timeout)
	attempt := 0

	for {
		attempt++
		err := rs.Ping(ctx)
		if err == nil {
			if attempt > 1 {
				logger.Info("Redis connection established", "attempts", attempt)
			}
			return nil
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("redis not reachable after %s: %w", timeout, err)
		}

		logger.Debug("Waiting for Redis", "attempt", attempt, "error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
}

func (rs *RedisStorage) SaveSession(ctx context.Context, s *session.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key := sessionKeyPrefix + s.ID.String()
	if err := rs.client.Set(ctx, key, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (rs *RedisStorage) LoadSession(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	key := sessionKeyPrefix + id.String()
	data, err := rs.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil // Session not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var s session.Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

func (rs *RedisStorage) DeleteSession(ctx context.Context, id uuid.UUID) error {
	key := sessionKeyPrefix + id.String()
	if err := rs.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// RecordScore writes the session's banked total to the leaderboard.
// ZAdd keeps one entry per session, so replaying under the same
// session overwrites the previous score.
func (rs *RedisStorage) RecordScore(ctx context.Context, s *session.Session) error {
	err := rs.client.ZAdd(ctx, highScoreKey, redis.Z{
		Score:  float64(s.TotalScore),
		Member: s.ID.String(),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to record score: %w", err)
	}
	return nil
}

func (rs *RedisStorage) TopScores(ctx context.Context, n int) ([]HighScore, error) {
	if n <= 0 {
		return nil, nil
	}

	entries, err := rs.client.ZRevRangeWithScores(ctx, highScoreKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load high scores: %w", err)
	}

	scores := make([]HighScore, 0, len(entries))
	for _, e := range entries {
		id, ok := e.Member.(string)
		if !ok {
			continue
		}
		scores = append(scores, HighScore{
			SessionID: id,
			Score:     int(e.Score),
		})
	}
	return scores, nil
}

func (rs *RedisStorage) ListLevels(ctx context.Context) ([]level.Level, error) {
	return loadLevelDir(rs.dataDir)
}

func (rs *RedisStorage) GetLevel(ctx context.Context, filename string) (*level.Level, error) {
	return loadLevelFile(rs.dataDir, filename)
}
