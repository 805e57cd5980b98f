// Package session tracks a single play-through of the cave: which level
// the caver is on, the treasure counts, and where the run is in its
// lifecycle. Sessions serialize to JSON for storage.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle phase of a session.
type Status string

const (
	StatusStart         Status = "start"          // On the title screen
	StatusPlaying       Status = "playing"        // Mid-level
	StatusLevelComplete Status = "level_complete" // Between levels
	StatusGameOver      Status = "game_over"      // Caught by a dragon
	StatusWon           Status = "won"            // Cleared every level
)

// Session is the state of one play-through.
type Session struct {
	ID          uuid.UUID `json:"id"`
	DragonCount int       `json:"dragon_count"` // Dragons per level, chosen on the title screen
	LevelIndex  int       `json:"level_index"`  // Zero-based index of the current level
	LevelScore  int       `json:"level_score"`  // Treasures collected in the current level
	TotalScore  int       `json:"total_score"`  // Treasures banked from completed levels
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// New creates a session on the title screen with the given dragon count.
func New(dragonCount int) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:          uuid.New(),
		DragonCount: dragonCount,
		Status:      StatusStart,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}

// StartLevel moves the session into the current level, resetting the
// per-level score.
func (s *Session) StartLevel() {
	s.LevelScore = 0
	s.Status = StatusPlaying
	s.touch()
}

// CollectTreasure scores one treasure in the current level.
func (s *Session) CollectTreasure() {
	s.LevelScore++
	s.touch()
}

// CollectBigTreasure doubles the current level's score. The big treasure
// appears at the exit once every ordinary treasure has been collected.
func (s *Session) CollectBigTreasure() {
	s.LevelScore *= 2
	s.touch()
}

// CompleteLevel banks the level score and advances. levelCount is the
// number of levels in the campaign; finishing the last one wins the run.
func (s *Session) CompleteLevel(levelCount int) {
	s.TotalScore += s.LevelScore
	s.LevelIndex++
	if s.LevelIndex >= levelCount {
		s.Status = StatusWon
	} else {
		s.Status = StatusLevelComplete
	}
	s.touch()
}

// Lose ends the run. Treasure from the unfinished level is lost; only
// levels cleared through the exit count toward the total.
func (s *Session) Lose() {
	s.LevelScore = 0
	s.Status = StatusGameOver
	s.touch()
}

// Restart rewinds to level one with a fresh score, keeping the session
// ID and dragon count.
func (s *Session) Restart() {
	s.LevelIndex = 0
	s.LevelScore = 0
	s.TotalScore = 0
	s.Status = StatusStart
	s.touch()
}

// Finished reports whether the run has ended, in victory or defeat.
func (s *Session) Finished() bool {
	return s.Status == StatusWon || s.Status == StatusGameOver
}

// Summary renders a short shareable description of the run, used by the
// clipboard copy on the end screens.
func (s *Session) Summary(levelCount int) string {
	switch s.Status {
	case StatusWon:
		return fmt.Sprintf("Dragon Cave Adventure: conquered all %d levels with %d treasures! (dragons: %d)",
			levelCount, s.TotalScore, s.DragonCount)
	case StatusGameOver:
		return fmt.Sprintf("Dragon Cave Adventure: the dragon got me on level %d/%d with %d treasures. (dragons: %d)",
			s.LevelIndex+1, levelCount, s.TotalScore, s.DragonCount)
	default:
		return fmt.Sprintf("Dragon Cave Adventure: level %d/%d, %d treasures so far.",
			s.LevelIndex+1, levelCount, s.TotalScore)
	}
}
