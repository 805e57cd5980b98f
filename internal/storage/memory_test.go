package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skovand/dragon-cave/pkg/session"
)

func TestMemoryStorage_SessionRoundTrip(t *testing.T) {
	ms := NewMemoryStorage(t.TempDir())
	ctx := context.Background()

	s := session.New(3)
	require.NoError(t, ms.SaveSession(ctx, s))

	// Mutating the original must not leak into the stored copy.
	s.CollectTreasure()

	loaded, err := ms.LoadSession(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 0, loaded.LevelScore)
	assert.Equal(t, 3, loaded.DragonCount)

	require.NoError(t, ms.DeleteSession(ctx, s.ID))
	loaded, err = ms.LoadSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMemoryStorage_TopScores(t *testing.T) {
	ms := NewMemoryStorage(t.TempDir())
	ctx := context.Background()

	for _, total := range []int{5, 50, 20} {
		s := session.New(1)
		s.TotalScore = total
		require.NoError(t, ms.RecordScore(ctx, s))
	}

	top, err := ms.TopScores(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 50, top[0].Score)
	assert.Equal(t, 20, top[1].Score)
}

func TestMemoryStorage_PingError(t *testing.T) {
	ms := NewMemoryStorage(t.TempDir())
	ctx := context.Background()

	require.NoError(t, ms.Ping(ctx))

	ms.SetPingError(errors.New("storage offline"))
	assert.Error(t, ms.Ping(ctx))

	ms.SetPingSuccess()
	assert.NoError(t, ms.Ping(ctx))
}
