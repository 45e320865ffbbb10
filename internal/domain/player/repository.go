package player

import (
	"context"
	"time"
)

// Repository describes player persistence needs from use cases.
//
// UpsertAll overwrites every field of an existing row and stamps its refresh
// time; unseen identifiers are inserted. Rows are never deleted.
type Repository interface {
	UpsertAll(ctx context.Context, players []Player) error
	// ListAll returns all players ordered by position, then cost descending.
	ListAll(ctx context.Context) ([]Player, error)
	// ListByPosition returns players in one position ordered by recent form descending.
	ListByPosition(ctx context.Context, position Position) ([]Player, error)
	// GetByIDs resolves ids in the given order; unknown ids are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]Player, error)
	// LastUpdated reports the most recent refresh time across all rows.
	// The zero time means the table is empty.
	LastUpdated(ctx context.Context) (time.Time, error)
}
