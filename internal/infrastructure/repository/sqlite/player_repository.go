package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"fpltransfer/internal/domain/player"
)

type PlayerRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{
		db:  db,
		now: time.Now,
	}
}

const upsertPlayerQuery = `
INSERT INTO players (
    id, name, full_name, club, club_id, position, cost,
    avg_points_last_3, avg_fixture_difficulty_next_3,
    total_points, minutes, recent_minutes, updated_at
) VALUES (
    :id, :name, :full_name, :club, :club_id, :position, :cost,
    :avg_points_last_3, :avg_fixture_difficulty_next_3,
    :total_points, :minutes, :recent_minutes, :updated_at
)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    full_name = excluded.full_name,
    club = excluded.club,
    club_id = excluded.club_id,
    position = excluded.position,
    cost = excluded.cost,
    avg_points_last_3 = excluded.avg_points_last_3,
    avg_fixture_difficulty_next_3 = excluded.avg_fixture_difficulty_next_3,
    total_points = excluded.total_points,
    minutes = excluded.minutes,
    recent_minutes = excluded.recent_minutes,
    updated_at = excluded.updated_at`

const playerSelectColumns = `
    id, name, full_name, club, club_id, position, cost,
    avg_points_last_3, avg_fixture_difficulty_next_3,
    total_points, minutes, recent_minutes, updated_at`

func (r *PlayerRepository) UpsertAll(ctx context.Context, players []player.Player) error {
	if len(players) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert tx: %w", err)
	}
	defer tx.Rollback()

	now := r.now().UTC()
	for _, p := range players {
		if _, err := tx.NamedExecContext(ctx, upsertPlayerQuery, toTableModel(p, now)); err != nil {
			return fmt.Errorf("upsert player id=%d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert tx: %w", err)
	}

	return nil
}

func (r *PlayerRepository) ListAll(ctx context.Context) ([]player.Player, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM players ORDER BY position, cost DESC, id",
		playerSelectColumns,
	)

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select all players: %w", err)
	}

	return toDomainSlice(rows), nil
}

func (r *PlayerRepository) ListByPosition(ctx context.Context, position player.Position) ([]player.Player, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM players WHERE position = ? ORDER BY avg_points_last_3 DESC, id",
		playerSelectColumns,
	)

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, string(position)); err != nil {
		return nil, fmt.Errorf("select players by position: %w", err)
	}

	return toDomainSlice(rows), nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, ids []int64) ([]player.Player, error) {
	if len(ids) == 0 {
		return []player.Player{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := fmt.Sprintf(
		"SELECT %s FROM players WHERE id IN (%s)",
		playerSelectColumns, placeholders,
	)
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by ids: %w", err)
	}

	// Preserve the caller's id order; unknown ids are skipped.
	byID := make(map[int64]player.Player, len(rows))
	for _, row := range rows {
		byID[row.ID] = row.toDomain()
	}
	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PlayerRepository) LastUpdated(ctx context.Context) (time.Time, error) {
	var unix int64
	err := r.db.GetContext(ctx, &unix, "SELECT COALESCE(MAX(updated_at), 0) FROM players")
	if err != nil {
		return time.Time{}, fmt.Errorf("select last updated: %w", err)
	}
	if unix == 0 {
		return time.Time{}, nil
	}

	return time.Unix(unix, 0).UTC(), nil
}

func toDomainSlice(rows []playerTableModel) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
