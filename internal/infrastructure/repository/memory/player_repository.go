// Package memory holds in-memory repository implementations used as test
// doubles. Ordering rules mirror the sqlite implementation so ranking
// behavior is identical under test.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"fpltransfer/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	rows    []player.Player
	index   map[int64]int
	now     func() time.Time
	updated time.Time
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{
		index: make(map[int64]int),
		now:   time.Now,
	}
	if len(players) > 0 {
		_ = r.UpsertAll(context.Background(), players)
	}
	return r
}

// SetNow overrides the clock used to stamp upserts.
func (r *PlayerRepository) SetNow(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

func (r *PlayerRepository) UpsertAll(_ context.Context, players []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	for _, p := range players {
		p.UpdatedAt = now
		if i, ok := r.index[p.ID]; ok {
			r.rows[i] = p
			continue
		}
		r.index[p.ID] = len(r.rows)
		r.rows = append(r.rows, p)
	}
	r.updated = now

	return nil
}

func (r *PlayerRepository) ListAll(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, len(r.rows))
	copy(out, r.rows)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].Cost > out[j].Cost
	})

	return out, nil
}

func (r *PlayerRepository) ListByPosition(_ context.Context, position player.Position) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.rows))
	for _, p := range r.rows {
		if p.Position == position {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AvgPointsLast3 > out[j].AvgPointsLast3
	})

	return out, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, ids []int64) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		i, ok := r.index[id]
		if !ok {
			continue
		}
		out = append(out, r.rows[i])
	}

	return out, nil
}

func (r *PlayerRepository) LastUpdated(_ context.Context) (time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.rows) == 0 {
		return time.Time{}, nil
	}
	return r.updated, nil
}
