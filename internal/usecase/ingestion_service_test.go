package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"fpltransfer/internal/domain/player"
	"fpltransfer/internal/infrastructure/repository/memory"
)

type fakeStatsProvider struct {
	bootstrap    ExternalBootstrap
	bootstrapErr error
	liveByGW     map[int][]ExternalLiveStat
	liveErrByGW  map[int]error
	fixtures     []ExternalFixture
	fixturesErr  error
}

func (f *fakeStatsProvider) FetchBootstrap(context.Context) (ExternalBootstrap, error) {
	return f.bootstrap, f.bootstrapErr
}

func (f *fakeStatsProvider) FetchLiveStats(_ context.Context, gameweek int) ([]ExternalLiveStat, error) {
	if err := f.liveErrByGW[gameweek]; err != nil {
		return nil, err
	}
	return f.liveByGW[gameweek], nil
}

func (f *fakeStatsProvider) FetchFixtures(context.Context) ([]ExternalFixture, error) {
	return f.fixtures, f.fixturesErr
}

func eventPtr(v int) *int { return &v }

func baseBootstrap() ExternalBootstrap {
	return ExternalBootstrap{
		Events: []ExternalEvent{
			{ID: 1, Finished: true},
			{ID: 2, Finished: true},
			{ID: 3, Finished: true},
			{ID: 4, Finished: true},
			{ID: 5, Finished: false},
		},
		Clubs: []ExternalClub{
			{ID: 1, Name: "Arsenal"},
			{ID: 2, Name: "Brentford"},
		},
		Elements: []ExternalElement{
			{ID: 10, WebName: "Saka", FirstName: "Bukayo", SecondName: "Saka", ClubID: 1, ElementType: 3, NowCost: 100, TotalPoints: 90, Minutes: 1200},
			{ID: 11, WebName: "Raya", FirstName: "David", SecondName: "Raya", ClubID: 1, ElementType: 1, NowCost: 55, TotalPoints: 60, Minutes: 1350},
			{ID: 12, WebName: "Mbeumo", FirstName: "Bryan", SecondName: "Mbeumo", ClubID: 2, ElementType: 4, NowCost: 78, TotalPoints: 70, Minutes: 1100},
		},
	}
}

func TestIngestion_UsesLastThreeFinishedGameweeks(t *testing.T) {
	provider := &fakeStatsProvider{
		bootstrap: baseBootstrap(),
		liveByGW: map[int][]ExternalLiveStat{
			2: {{PlayerID: 10, Points: 2, Minutes: 90}},
			3: {{PlayerID: 10, Points: 7, Minutes: 90}},
			4: {{PlayerID: 10, Points: 3, Minutes: 60}},
		},
	}
	repo := memory.NewPlayerRepository(nil)
	service := NewIngestionService(provider, repo, nil)

	result, err := service.Run(t.Context())
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4}, result.Gameweeks)
	require.Equal(t, 3, result.PlayerCount)
	require.Empty(t, result.FailedGameweeks)

	players, err := repo.GetByIDs(t.Context(), []int64{10})
	require.NoError(t, err)
	require.Len(t, players, 1)

	saka := players[0]
	require.Equal(t, 4.0, saka.AvgPointsLast3) // (2+7+3)/3
	require.Equal(t, 240, saka.RecentMinutes)
	require.Equal(t, player.PositionMidfielder, saka.Position)
	require.Equal(t, "Arsenal", saka.Club)
	require.Equal(t, "Bukayo Saka", saka.FullName)
}

func TestIngestion_NoFinishedGameweeksIsFatal(t *testing.T) {
	bootstrap := baseBootstrap()
	for i := range bootstrap.Events {
		bootstrap.Events[i].Finished = false
	}
	provider := &fakeStatsProvider{bootstrap: bootstrap}
	service := NewIngestionService(provider, memory.NewPlayerRepository(nil), nil)

	_, err := service.Run(t.Context())
	require.ErrorIs(t, err, ErrNoFinishedGameweeks)
}

func TestIngestion_PartialGameweekFailureDegradesGracefully(t *testing.T) {
	provider := &fakeStatsProvider{
		bootstrap: baseBootstrap(),
		liveByGW: map[int][]ExternalLiveStat{
			2: {{PlayerID: 10, Points: 6, Minutes: 90}},
			4: {{PlayerID: 10, Points: 2, Minutes: 90}},
		},
		liveErrByGW: map[int]error{3: errors.New("gateway timeout")},
	}
	repo := memory.NewPlayerRepository(nil)
	service := NewIngestionService(provider, repo, nil)

	result, err := service.Run(t.Context())
	require.NoError(t, err)
	require.Equal(t, []int{3}, result.FailedGameweeks)

	players, err := repo.GetByIDs(t.Context(), []int64{10})
	require.NoError(t, err)
	require.Len(t, players, 1)
	// Average over the two gameweeks that yielded data, not three.
	require.Equal(t, 4.0, players[0].AvgPointsLast3)
	require.Equal(t, 180, players[0].RecentMinutes)
}

func TestIngestion_PlayerWithoutHistoryGetsZeroForm(t *testing.T) {
	provider := &fakeStatsProvider{
		bootstrap: baseBootstrap(),
		liveByGW: map[int][]ExternalLiveStat{
			2: {{PlayerID: 10, Points: 5, Minutes: 90}},
			3: {{PlayerID: 10, Points: 5, Minutes: 90}},
			4: {{PlayerID: 10, Points: 5, Minutes: 90}},
		},
	}
	repo := memory.NewPlayerRepository(nil)
	service := NewIngestionService(provider, repo, nil)

	_, err := service.Run(t.Context())
	require.NoError(t, err)

	players, err := repo.GetByIDs(t.Context(), []int64{11})
	require.NoError(t, err)
	require.Len(t, players, 1)
	require.Equal(t, 0.0, players[0].AvgPointsLast3)
	require.Equal(t, 0, players[0].RecentMinutes)
}

func TestIngestion_FixtureDifficultyWindow(t *testing.T) {
	provider := &fakeStatsProvider{
		bootstrap: baseBootstrap(),
		liveByGW: map[int][]ExternalLiveStat{
			2: {}, 3: {}, 4: {},
		},
		fixtures: []ExternalFixture{
			// Finished and unscheduled fixtures are ignored.
			{Event: eventPtr(4), Finished: true, HomeClubID: 1, AwayClubID: 2, HomeDifficulty: 5, AwayDifficulty: 5},
			{Event: nil, Finished: false, HomeClubID: 1, AwayClubID: 2, HomeDifficulty: 5, AwayDifficulty: 5},
			// Club 1 upcoming, out of order on purpose: gameweeks 7, 5, 6, 8.
			{Event: eventPtr(7), Finished: false, HomeClubID: 1, AwayClubID: 3, HomeDifficulty: 4, AwayDifficulty: 2},
			{Event: eventPtr(5), Finished: false, HomeClubID: 1, AwayClubID: 4, HomeDifficulty: 2, AwayDifficulty: 3},
			{Event: eventPtr(6), Finished: false, HomeClubID: 5, AwayClubID: 1, HomeDifficulty: 3, AwayDifficulty: 3},
			{Event: eventPtr(8), Finished: false, HomeClubID: 1, AwayClubID: 6, HomeDifficulty: 5, AwayDifficulty: 1},
		},
	}
	repo := memory.NewPlayerRepository(nil)
	service := NewIngestionService(provider, repo, nil)

	_, err := service.Run(t.Context())
	require.NoError(t, err)

	players, err := repo.GetByIDs(t.Context(), []int64{10, 12})
	require.NoError(t, err)
	require.Len(t, players, 2)

	// Club 1's next three by gameweek: 2 (gw5 home), 3 (gw6 away), 4 (gw7
	// home). The gw8 fixture falls outside the window.
	require.Equal(t, 3.0, players[0].AvgFixtureDifficultyNext3)
	// Club 2 has no upcoming fixtures: midpoint default.
	require.Equal(t, 3.0, players[1].AvgFixtureDifficultyNext3)
}

func TestIngestion_AveragesRoundedToTwoDecimals(t *testing.T) {
	provider := &fakeStatsProvider{
		bootstrap: baseBootstrap(),
		liveByGW: map[int][]ExternalLiveStat{
			2: {{PlayerID: 10, Points: 1, Minutes: 30}},
			3: {{PlayerID: 10, Points: 1, Minutes: 30}},
			4: {{PlayerID: 10, Points: 2, Minutes: 30}},
		},
		fixtures: []ExternalFixture{
			{Event: eventPtr(5), Finished: false, HomeClubID: 1, AwayClubID: 2, HomeDifficulty: 2, AwayDifficulty: 4},
			{Event: eventPtr(6), Finished: false, HomeClubID: 1, AwayClubID: 2, HomeDifficulty: 3, AwayDifficulty: 2},
			{Event: eventPtr(7), Finished: false, HomeClubID: 1, AwayClubID: 2, HomeDifficulty: 5, AwayDifficulty: 1},
		},
	}
	repo := memory.NewPlayerRepository(nil)
	service := NewIngestionService(provider, repo, nil)

	_, err := service.Run(t.Context())
	require.NoError(t, err)

	players, err := repo.GetByIDs(t.Context(), []int64{10})
	require.NoError(t, err)
	require.Len(t, players, 1)
	require.Equal(t, 1.33, players[0].AvgPointsLast3)            // 4/3 rounded
	require.Equal(t, 3.33, players[0].AvgFixtureDifficultyNext3) // (2+3+5)/3 rounded
}

func TestIngestion_BootstrapFailureAborts(t *testing.T) {
	provider := &fakeStatsProvider{bootstrapErr: errors.New("connection refused")}
	service := NewIngestionService(provider, memory.NewPlayerRepository(nil), nil)

	_, err := service.Run(t.Context())
	require.Error(t, err)
}
