package usecase

import (
	"context"
	"fmt"

	"fpltransfer/internal/domain/player"
	"fpltransfer/internal/domain/squad"
	"fpltransfer/internal/platform/logging"
)

// SquadService persists and restores the user's 15-player selection. Only
// complete squads are written; saved ids that no longer resolve against the
// repository are dropped on load, mirroring the selection surface.
type SquadService struct {
	playerRepo player.Repository
	store      squad.Store
	logger     *logging.Logger
}

func NewSquadService(playerRepo player.Repository, store squad.Store, logger *logging.Logger) *SquadService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SquadService{
		playerRepo: playerRepo,
		store:      store,
		logger:     logger,
	}
}

// Save hydrates the given player ids, requires a complete squad, and
// overwrites the stored selection.
func (s *SquadService) Save(ctx context.Context, playerIDs []int64) (squad.Squad, error) {
	if len(playerIDs) == 0 {
		return squad.Squad{}, fmt.Errorf("%w: player ids are required", ErrInvalidInput)
	}
	if containsDuplicate(playerIDs) {
		return squad.Squad{}, fmt.Errorf("%w: duplicate player id", ErrInvalidInput)
	}

	players, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("get players by ids: %w", err)
	}
	if len(players) != len(playerIDs) {
		return squad.Squad{}, fmt.Errorf("%w: some player ids are unknown", ErrInvalidInput)
	}

	sq := squad.Squad{Players: players}
	if err := sq.Complete(); err != nil {
		return squad.Squad{}, fmt.Errorf("%w: %s", ErrSquadIncomplete, err)
	}

	if err := s.store.Save(ctx, sq.GroupIDs()); err != nil {
		return squad.Squad{}, fmt.Errorf("save squad: %w", err)
	}

	s.logger.Info("squad saved", "players", len(sq.Players))
	return sq, nil
}

// Load returns the stored selection hydrated against the current repository
// snapshot. Ids that no longer resolve are silently dropped, so a returned
// squad may be incomplete after a data refresh.
func (s *SquadService) Load(ctx context.Context) (squad.Squad, error) {
	grouped, err := s.store.Load(ctx)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("load squad: %w", err)
	}

	ids := make([]int64, 0, squad.Size)
	for _, pos := range player.AllPositions {
		ids = append(ids, grouped[pos]...)
	}
	if len(ids) == 0 {
		return squad.Squad{}, nil
	}

	players, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return squad.Squad{}, fmt.Errorf("get players by ids: %w", err)
	}

	return squad.Squad{Players: players}, nil
}

// CurrentSquad loads the stored selection and requires it to be complete.
// Recommendation requests go through here. An empty repository surfaces as
// ErrNoPlayerData so the caller prompts for a refresh instead of blaming the
// squad; this also covers a saved squad whose ids were all dropped on load.
func (s *SquadService) CurrentSquad(ctx context.Context) (squad.Squad, error) {
	sq, err := s.Load(ctx)
	if err != nil {
		return squad.Squad{}, err
	}
	if len(sq.Players) == 0 {
		lastUpdated, err := s.playerRepo.LastUpdated(ctx)
		if err != nil {
			return squad.Squad{}, fmt.Errorf("last updated: %w", err)
		}
		if lastUpdated.IsZero() {
			return squad.Squad{}, ErrNoPlayerData
		}
		return squad.Squad{}, fmt.Errorf("%w: no squad saved", ErrSquadIncomplete)
	}
	if err := sq.Complete(); err != nil {
		return squad.Squad{}, fmt.Errorf("%w: %s", ErrSquadIncomplete, err)
	}

	return sq, nil
}

func containsDuplicate(ids []int64) bool {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
