package session

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSession_Lifecycle(t *testing.T) {
	s := New(2)
	if s.Status != StatusStart {
		t.Fatalf("new session status = %q, want %q", s.Status, StatusStart)
	}
	if s.DragonCount != 2 {
		t.Fatalf("dragon count = %d, want 2", s.DragonCount)
	}

	s.StartLevel()
	if s.Status != StatusPlaying {
		t.Errorf("status after StartLevel = %q", s.Status)
	}

	s.CollectTreasure()
	s.CollectTreasure()
	s.CollectTreasure()
	if s.LevelScore != 3 {
		t.Errorf("level score = %d, want 3", s.LevelScore)
	}

	s.CollectBigTreasure()
	if s.LevelScore != 6 {
		t.Errorf("level score after big treasure = %d, want 6", s.LevelScore)
	}

	s.CompleteLevel(10)
	if s.Status != StatusLevelComplete {
		t.Errorf("status after CompleteLevel = %q", s.Status)
	}
	if s.TotalScore != 6 || s.LevelIndex != 1 {
		t.Errorf("total=%d index=%d, want 6 and 1", s.TotalScore, s.LevelIndex)
	}
}

func TestSession_WinOnLastLevel(t *testing.T) {
	s := New(1)
	s.LevelIndex = 9
	s.StartLevel()
	s.CollectTreasure()
	s.CompleteLevel(10)

	if s.Status != StatusWon {
		t.Errorf("status = %q, want %q", s.Status, StatusWon)
	}
	if !s.Finished() {
		t.Error("Finished() should be true after winning")
	}
}

func TestSession_LoseDiscardsLevelScore(t *testing.T) {
	s := New(1)
	s.StartLevel()
	s.CollectTreasure()
	s.CompleteLevel(10)
	s.StartLevel()
	s.CollectTreasure()
	s.CollectTreasure()
	s.Lose()

	if s.Status != StatusGameOver {
		t.Errorf("status = %q, want %q", s.Status, StatusGameOver)
	}
	if s.TotalScore != 1 {
		t.Errorf("total score = %d, want 1 (unbanked treasure is lost)", s.TotalScore)
	}
	if s.LevelScore != 0 {
		t.Errorf("level score = %d, want 0", s.LevelScore)
	}
}

func TestSession_Restart(t *testing.T) {
	s := New(3)
	id := s.ID
	s.StartLevel()
	s.CollectTreasure()
	s.CompleteLevel(10)
	s.Restart()

	if s.Status != StatusStart || s.LevelIndex != 0 || s.TotalScore != 0 || s.LevelScore != 0 {
		t.Errorf("restart did not reset: %+v", s)
	}
	if s.ID != id {
		t.Error("restart should keep the session ID")
	}
	if s.DragonCount != 3 {
		t.Error("restart should keep the dragon count")
	}
}

func TestSession_Summary(t *testing.T) {
	s := New(2)
	s.StartLevel()
	s.CollectTreasure()
	s.Lose()

	got := s.Summary(10)
	if !strings.Contains(got, "0 treasures") || !strings.Contains(got, "level 1/10") {
		t.Errorf("unexpected summary: %q", got)
	}

	s.Status = StatusWon
	s.TotalScore = 42
	if got := s.Summary(10); !strings.Contains(got, "42 treasures") {
		t.Errorf("unexpected win summary: %q", got)
	}
}

func TestSession_JSONRoundTrip(t *testing.T) {
	s := New(4)
	s.StartLevel()
	s.CollectTreasure()

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Session
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != s.ID || got.DragonCount != s.DragonCount || got.LevelScore != s.LevelScore || got.Status != s.Status {
		t.Errorf("round trip lost data: %+v", got)
	}
}
