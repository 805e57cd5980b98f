//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skovand/dragon-cave/internal/storage"
	"github.com/skovand/dragon-cave/pkg/level"
	"github.com/skovand/dragon-cave/pkg/session"
	"github.com/skovand/dragon-cave/pkg/sim"
)

// quietCave is a deterministic layout: one treasure on the way to the
// exit and the dragon nesting far beyond it, outside any wake range.
func quietCave() level.Level {
	return level.Level{
		Name:  "Quiet Cave",
		Width: 1200,
		Platforms: []level.Platform{
			{X: 0, Y: level.GroundY, W: 1200, H: 40},
		},
		Treasures:    []level.Spot{{X: 300, Y: level.GroundY}},
		DragonStarts: []level.Spot{{X: 1100, Y: level.GroundY}},
		Exit:         level.Spot{X: 500, Y: level.GroundY},
	}
}

// TestPlaythrough drives a full run end to end: simulate a level to
// completion, bank the score through the session, and persist it.
func TestPlaythrough(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage(t.TempDir())
	lvl := quietCave()
	require.Empty(t, lvl.Validate())

	sess := session.New(1)
	sess.StartLevel()

	world, err := sim.NewWorld(&lvl, sess.DragonCount, nil)
	require.NoError(t, err)

	// Walk right until the exit; the treasure and the big treasure are
	// both on the path.
	for tick := 0; world.Outcome == sim.OutcomeRunning && tick < 2000; tick++ {
		for _, ev := range world.Step(sim.Input{Right: true}) {
			switch ev.Kind {
			case sim.EventTreasure:
				sess.CollectTreasure()
			case sim.EventBigTreasure:
				sess.CollectBigTreasure()
			}
		}
	}
	require.Equal(t, sim.OutcomeComplete, world.Outcome, "the caver should reach the exit")
	assert.Equal(t, sim.DragonSleeping, world.Dragons[0].State, "the far dragon should sleep through the run")
	assert.Equal(t, 2, sess.LevelScore, "one treasure, doubled by the hoard")

	sess.CompleteLevel(1)
	require.Equal(t, session.StatusWon, sess.Status)
	assert.Equal(t, 2, sess.TotalScore)

	require.NoError(t, store.SaveSession(ctx, sess))
	require.NoError(t, store.RecordScore(ctx, sess))

	loaded, err := store.LoadSession(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, session.StatusWon, loaded.Status)

	top, err := store.TopScores(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 2, top[0].Score)
}
