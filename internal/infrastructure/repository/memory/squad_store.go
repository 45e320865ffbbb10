package memory

import (
	"context"
	"sync"

	"fpltransfer/internal/domain/player"
)

type SquadStore struct {
	mu      sync.RWMutex
	grouped map[player.Position][]int64
}

func NewSquadStore() *SquadStore {
	return &SquadStore{}
}

func (s *SquadStore) Save(_ context.Context, grouped map[player.Position][]int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[player.Position][]int64, len(grouped))
	for pos, ids := range grouped {
		out[pos] = append([]int64(nil), ids...)
	}
	s.grouped = out

	return nil
}

func (s *SquadStore) Load(_ context.Context) (map[player.Position][]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.grouped == nil {
		return map[player.Position][]int64{}, nil
	}

	out := make(map[player.Position][]int64, len(s.grouped))
	for pos, ids := range s.grouped {
		out[pos] = append([]int64(nil), ids...)
	}
	return out, nil
}
