package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fpltransfer/internal/domain/player"
)

func newTestRepository(t *testing.T) *PlayerRepository {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewPlayerRepository(db)
}

func seedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, Name: "Raya", FullName: "David Raya", Club: "Arsenal", ClubID: 1, Position: player.PositionGoalkeeper, Cost: 55, AvgPointsLast3: 4.33, AvgFixtureDifficultyNext3: 2.67, TotalPoints: 60, Minutes: 1350, RecentMinutes: 270},
		{ID: 2, Name: "Saka", FullName: "Bukayo Saka", Club: "Arsenal", ClubID: 1, Position: player.PositionMidfielder, Cost: 100, AvgPointsLast3: 6.0, AvgFixtureDifficultyNext3: 2.67, TotalPoints: 90, Minutes: 1200, RecentMinutes: 250},
		{ID: 3, Name: "Mbeumo", FullName: "Bryan Mbeumo", Club: "Brentford", ClubID: 2, Position: player.PositionMidfielder, Cost: 78, AvgPointsLast3: 7.33, AvgFixtureDifficultyNext3: 3.33, TotalPoints: 70, Minutes: 1100, RecentMinutes: 270},
	}
}

func TestPlayerRepository_UpsertInsertsThenOverwrites(t *testing.T) {
	repo := newTestRepository(t)
	ctx := t.Context()

	require.NoError(t, repo.UpsertAll(ctx, seedPlayers()))

	got, err := repo.GetByIDs(ctx, []int64{2})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 100, got[0].Cost)

	updated := seedPlayers()
	updated[1].Cost = 102
	updated[1].AvgPointsLast3 = 8.0
	require.NoError(t, repo.UpsertAll(ctx, updated))

	got, err = repo.GetByIDs(ctx, []int64{2})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 102, got[0].Cost)
	require.Equal(t, 8.0, got[0].AvgPointsLast3)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3, "upsert must not duplicate rows")
}

func TestPlayerRepository_ListAllOrderedByPositionThenCostDesc(t *testing.T) {
	repo := newTestRepository(t)
	ctx := t.Context()
	require.NoError(t, repo.UpsertAll(ctx, seedPlayers()))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Position sorts as text (GKP < MID); within MID the dearer player first.
	require.Equal(t, int64(1), all[0].ID)
	require.Equal(t, int64(2), all[1].ID)
	require.Equal(t, int64(3), all[2].ID)
}

func TestPlayerRepository_ListByPositionOrderedByForm(t *testing.T) {
	repo := newTestRepository(t)
	ctx := t.Context()
	require.NoError(t, repo.UpsertAll(ctx, seedPlayers()))

	mids, err := repo.ListByPosition(ctx, player.PositionMidfielder)
	require.NoError(t, err)
	require.Len(t, mids, 2)
	require.Equal(t, int64(3), mids[0].ID, "higher recent form first")
	require.Equal(t, int64(2), mids[1].ID)
}

func TestPlayerRepository_GetByIDsPreservesRequestOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := t.Context()
	require.NoError(t, repo.UpsertAll(ctx, seedPlayers()))

	got, err := repo.GetByIDs(ctx, []int64{3, 999, 1})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, int64(3), got[0].ID)
	require.Equal(t, int64(1), got[1].ID)
}

func TestPlayerRepository_LastUpdated(t *testing.T) {
	repo := newTestRepository(t)
	ctx := t.Context()

	got, err := repo.LastUpdated(ctx)
	require.NoError(t, err)
	require.True(t, got.IsZero(), "empty table reports the zero time")

	stamp := time.Date(2026, 8, 21, 10, 30, 0, 0, time.UTC)
	repo.now = func() time.Time { return stamp }
	require.NoError(t, repo.UpsertAll(ctx, seedPlayers()))

	got, err = repo.LastUpdated(ctx)
	require.NoError(t, err)
	require.Equal(t, stamp, got)
}
