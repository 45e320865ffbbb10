package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"fpltransfer/internal/domain/player"
	"fpltransfer/internal/platform/logging"
	"fpltransfer/internal/platform/resilience"
)

const (
	formWindow               = 3
	fixtureWindow            = 3
	defaultFixtureDifficulty = 3.0
)

// positionByElementType maps the provider's position codes to squad roles.
var positionByElementType = map[int]player.Position{
	1: player.PositionGoalkeeper,
	2: player.PositionDefender,
	3: player.PositionMidfielder,
	4: player.PositionForward,
}

// IngestionResult summarizes one ingestion run.
type IngestionResult struct {
	PlayerCount     int
	Gameweeks       []int
	FailedGameweeks []int
}

// IngestionService pulls bootstrap, live-gameweek, and fixture data from the
// upstream API, derives rolling form and fixture-difficulty projections, and
// writes one normalized record per player into the repository.
type IngestionService struct {
	provider   StatsProvider
	playerRepo player.Repository
	logger     *logging.Logger
	flight     resilience.SingleFlight
}

func NewIngestionService(provider StatsProvider, playerRepo player.Repository, logger *logging.Logger) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &IngestionService{
		provider:   provider,
		playerRepo: playerRepo,
		logger:     logger,
	}
}

type gameweekStat struct {
	points  int
	minutes int
}

// Run executes one full ingestion pass. Concurrent calls are coalesced so a
// refresh triggered twice hits the upstream once; both callers see the same
// result.
func (s *IngestionService) Run(ctx context.Context) (IngestionResult, error) {
	value, err, shared := s.flight.Do("refresh", func() (any, error) {
		return s.run(ctx)
	})
	if err != nil {
		return IngestionResult{}, err
	}
	if shared {
		s.logger.Info("refresh coalesced with an in-flight run")
	}

	result, ok := value.(IngestionResult)
	if !ok {
		return IngestionResult{}, fmt.Errorf("unexpected ingestion result type %T", value)
	}
	return result, nil
}

func (s *IngestionService) run(ctx context.Context) (IngestionResult, error) {
	bootstrap, err := s.provider.FetchBootstrap(ctx)
	if err != nil {
		return IngestionResult{}, fmt.Errorf("fetch bootstrap: %w", err)
	}

	gameweeks := lastFinishedGameweeks(bootstrap.Events, formWindow)
	if len(gameweeks) == 0 {
		return IngestionResult{}, ErrNoFinishedGameweeks
	}
	s.logger.Info("ingestion using gameweeks", "gameweeks", gameweeks)

	history, failed, err := s.fetchGameweekHistory(ctx, gameweeks)
	if err != nil {
		return IngestionResult{}, err
	}

	fixtures, err := s.provider.FetchFixtures(ctx)
	if err != nil {
		return IngestionResult{}, fmt.Errorf("fetch fixtures: %w", err)
	}
	clubDifficulty := upcomingClubDifficulty(fixtures, fixtureWindow)

	clubNames := make(map[int64]string, len(bootstrap.Clubs))
	for _, club := range bootstrap.Clubs {
		clubNames[club.ID] = club.Name
	}

	records := buildPlayerRecords(bootstrap.Elements, clubNames, history, clubDifficulty)

	if err := s.playerRepo.UpsertAll(ctx, records); err != nil {
		return IngestionResult{}, fmt.Errorf("upsert players: %w", err)
	}

	s.logger.Info("ingestion complete",
		"players", len(records),
		"gameweeks", gameweeks,
		"failed_gameweeks", failed,
	)

	return IngestionResult{
		PlayerCount:     len(records),
		Gameweeks:       gameweeks,
		FailedGameweeks: failed,
	}, nil
}

// fetchGameweekHistory pulls live stats for each target gameweek through a
// bounded worker pool. A failed gameweek logs a warning and contributes
// nothing; results are merged in ascending gameweek order so the derived
// history stays deterministic.
func (s *IngestionService) fetchGameweekHistory(ctx context.Context, gameweeks []int) (map[int64][]gameweekStat, []int, error) {
	type liveResult struct {
		stats []ExternalLiveStat
		err   error
	}
	results := make([]liveResult, len(gameweeks))

	pool, err := ants.NewPool(len(gameweeks))
	if err != nil {
		return nil, nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, gw := range gameweeks {
		i, gw := i, gw
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			stats, err := s.provider.FetchLiveStats(ctx, gw)
			results[i] = liveResult{stats: stats, err: err}
		}); err != nil {
			workers.Done()
			return nil, nil, fmt.Errorf("submit live fetch: %w", err)
		}
	}
	workers.Wait()

	history := make(map[int64][]gameweekStat)
	var failed []int
	for i, gw := range gameweeks {
		if results[i].err != nil {
			s.logger.Warn("live gameweek fetch failed, continuing with partial data",
				"gameweek", gw,
				"error", results[i].err,
			)
			failed = append(failed, gw)
			continue
		}
		for _, stat := range results[i].stats {
			history[stat.PlayerID] = append(history[stat.PlayerID], gameweekStat{
				points:  stat.Points,
				minutes: stat.Minutes,
			})
		}
	}

	return history, failed, nil
}

// lastFinishedGameweeks returns up to n finished gameweek ids, ascending.
func lastFinishedGameweeks(events []ExternalEvent, n int) []int {
	finished := make([]int, 0, len(events))
	for _, event := range events {
		if event.Finished {
			finished = append(finished, event.ID)
		}
	}
	sort.Ints(finished)

	if len(finished) > n {
		finished = finished[len(finished)-n:]
	}
	return finished
}

// upcomingClubDifficulty accumulates each club's next fixtures' difficulty
// ratings, at most window entries per club, home and away legs counted for
// their respective clubs.
func upcomingClubDifficulty(fixtures []ExternalFixture, window int) map[int64][]int {
	upcoming := make([]ExternalFixture, 0, len(fixtures))
	for _, f := range fixtures {
		if f.Finished || f.Event == nil {
			continue
		}
		upcoming = append(upcoming, f)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return *upcoming[i].Event < *upcoming[j].Event
	})

	out := make(map[int64][]int)
	for _, f := range upcoming {
		if len(out[f.HomeClubID]) < window {
			out[f.HomeClubID] = append(out[f.HomeClubID], f.HomeDifficulty)
		}
		if len(out[f.AwayClubID]) < window {
			out[f.AwayClubID] = append(out[f.AwayClubID], f.AwayDifficulty)
		}
	}

	return out
}

func buildPlayerRecords(
	elements []ExternalElement,
	clubNames map[int64]string,
	history map[int64][]gameweekStat,
	clubDifficulty map[int64][]int,
) []player.Player {
	records := make([]player.Player, 0, len(elements))
	for _, el := range elements {
		stats := history[el.ID]

		var avgPoints float64
		recentMinutes := 0
		if len(stats) > 0 {
			total := 0
			for _, stat := range stats {
				total += stat.points
				recentMinutes += stat.minutes
			}
			avgPoints = float64(total) / float64(len(stats))
		}

		avgDifficulty := defaultFixtureDifficulty
		if ratings := clubDifficulty[el.ClubID]; len(ratings) > 0 {
			sum := 0
			for _, r := range ratings {
				sum += r
			}
			avgDifficulty = float64(sum) / float64(len(ratings))
		}

		clubName, ok := clubNames[el.ClubID]
		if !ok {
			clubName = "Unknown"
		}

		position, ok := positionByElementType[el.ElementType]
		if !ok {
			position = player.Position("UNK")
		}

		records = append(records, player.Player{
			ID:                        el.ID,
			Name:                      el.WebName,
			FullName:                  el.FirstName + " " + el.SecondName,
			Club:                      clubName,
			ClubID:                    el.ClubID,
			Position:                  position,
			Cost:                      el.NowCost,
			AvgPointsLast3:            round2(avgPoints),
			AvgFixtureDifficultyNext3: round2(avgDifficulty),
			TotalPoints:               el.TotalPoints,
			Minutes:                   el.Minutes,
			RecentMinutes:             recentMinutes,
		})
	}

	return records
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
