package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"fpltransfer/internal/domain/player"
	"fpltransfer/internal/domain/squad"
	"fpltransfer/internal/domain/transfer"
	"fpltransfer/internal/platform/logging"
)

// RecommendationService ranks replacement candidates against budget, club
// quota, and recent-minutes constraints. Candidates are always scored fresh
// against the current repository snapshot.
type RecommendationService struct {
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewRecommendationService(playerRepo player.Repository, logger *logging.Logger) *RecommendationService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RecommendationService{
		playerRepo: playerRepo,
		logger:     logger,
	}
}

// RecommendTransfers returns up to 5 replacements for playerOut, sorted by
// transfer score descending. Ties keep repository order. An impossible ask
// (such as a negative budget) yields an empty list, not an error.
func (s *RecommendationService) RecommendTransfers(
	ctx context.Context,
	sq squad.Squad,
	playerOut player.Player,
	extraBudgetTenths int,
) ([]transfer.Candidate, error) {
	pool, err := s.playerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	if len(pool) == 0 {
		return nil, ErrNoPlayerData
	}

	availableBudget := playerOut.Cost + extraBudgetTenths
	clubCounts := sq.Without(playerOut.ID).ClubCounts()

	candidates := make([]transfer.Candidate, 0, transfer.TopN)
	for _, p := range pool {
		if sq.Contains(p.ID) {
			continue
		}
		if p.Position != playerOut.Position {
			continue
		}
		if p.Cost > availableBudget {
			continue
		}
		if clubCounts[p.ClubID] >= transfer.MaxPerClub {
			continue
		}
		if p.RecentMinutes == 0 {
			continue
		}

		candidates = append(candidates, transfer.Candidate{
			Player: p,
			Score:  round3(transfer.Score(p)),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > transfer.TopN {
		candidates = candidates[:transfer.TopN]
	}
	return candidates, nil
}

// RecommendAllTransfers evaluates every possible single transfer across the
// squad and ranks the moves by net score improvement. Moves with negative
// improvement are kept.
func (s *RecommendationService) RecommendAllTransfers(
	ctx context.Context,
	sq squad.Squad,
	extraBudgetTenths int,
) ([]transfer.Move, error) {
	moves := make([]transfer.Move, 0, len(sq.Players))
	for _, playerOut := range sq.Players {
		candidates, err := s.RecommendTransfers(ctx, sq, playerOut, extraBudgetTenths)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			continue
		}

		best := candidates[0]
		outScore := round3(transfer.Score(playerOut))
		moves = append(moves, transfer.Move{
			Out:         playerOut,
			OutScore:    outScore,
			In:          best,
			Improvement: round3(best.Score - outScore),
		})
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Improvement > moves[j].Improvement
	})

	if len(moves) > transfer.TopN {
		moves = moves[:transfer.TopN]
	}
	return moves, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
