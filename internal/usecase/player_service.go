package usecase

import (
	"context"
	"fmt"
	"time"

	"fpltransfer/internal/domain/player"
	"fpltransfer/internal/platform/logging"
)

// PlayerStatus describes the freshness of the ingested player table.
type PlayerStatus struct {
	PlayerCount int
	LastUpdated time.Time
}

// PlayerService serves the squad-selection surface: player listings and the
// data-freshness status line.
type PlayerService struct {
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewPlayerService(playerRepo player.Repository, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		logger:     logger,
	}
}

// List returns all players, or one position's players when position is set.
func (s *PlayerService) List(ctx context.Context, position player.Position) ([]player.Player, error) {
	if position == "" {
		players, err := s.playerRepo.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
		return players, nil
	}

	if !player.ValidPosition(position) {
		return nil, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, position)
	}

	players, err := s.playerRepo.ListByPosition(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("list players by position: %w", err)
	}
	return players, nil
}

func (s *PlayerService) Status(ctx context.Context) (PlayerStatus, error) {
	players, err := s.playerRepo.ListAll(ctx)
	if err != nil {
		return PlayerStatus{}, fmt.Errorf("list players: %w", err)
	}

	lastUpdated, err := s.playerRepo.LastUpdated(ctx)
	if err != nil {
		return PlayerStatus{}, fmt.Errorf("last updated: %w", err)
	}

	return PlayerStatus{
		PlayerCount: len(players),
		LastUpdated: lastUpdated,
	}, nil
}
