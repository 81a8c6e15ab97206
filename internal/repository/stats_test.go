package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/repository/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsRepo(t *testing.T) (context.Context, StatsRepository) {
	t.Helper()

	ctx := context.Background()

	sqliteStorage, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, sqliteStorage.Close())
	})

	require.NoError(t, sqliteStorage.Init(ctx))

	return ctx, NewStatsRepository(sqliteStorage.Connection)
}

func TestStatsRepository_Record(t *testing.T) {
	ctx, statsRepo := newStatsRepo(t)

	// Given: a player with two wins, one loss and one draw recorded
	require.NoError(t, statsRepo.RecordWin(ctx, "p1"))
	require.NoError(t, statsRepo.RecordWin(ctx, "p1"))
	require.NoError(t, statsRepo.RecordLoss(ctx, "p1"))
	require.NoError(t, statsRepo.RecordDraw(ctx, "p1"))

	// When: the stats are read back
	stats, err := statsRepo.GetByPlayerID(ctx, "p1")

	// Then: the tallies match
	require.NoError(t, err)
	assert.Equal(t, "p1", stats.PlayerID)
	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 1, stats.Draws)
}

func TestStatsRepository_GetByPlayerID_Unknown(t *testing.T) {
	ctx, statsRepo := newStatsRepo(t)

	// When: reading stats for a player that never finished a game
	stats, err := statsRepo.GetByPlayerID(ctx, "ghost")

	// Then: an all-zero tally is returned
	require.NoError(t, err)
	assert.Equal(t, "ghost", stats.PlayerID)
	assert.Zero(t, stats.Wins)
	assert.Zero(t, stats.Losses)
	assert.Zero(t, stats.Draws)
}

func TestStatsRepository_PlayersAreIndependent(t *testing.T) {
	ctx, statsRepo := newStatsRepo(t)

	// Given: results for two different players
	require.NoError(t, statsRepo.RecordWin(ctx, "p1"))
	require.NoError(t, statsRepo.RecordLoss(ctx, "p2"))

	// When: each player's stats are read back
	first, err := statsRepo.GetByPlayerID(ctx, "p1")
	require.NoError(t, err)

	second, err := statsRepo.GetByPlayerID(ctx, "p2")
	require.NoError(t, err)

	// Then: the tallies do not bleed into each other
	assert.Equal(t, 1, first.Wins)
	assert.Zero(t, first.Losses)
	assert.Equal(t, 1, second.Losses)
	assert.Zero(t, second.Wins)
}
