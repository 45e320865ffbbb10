// Package squadfile persists the user's squad selection as a single JSON file
// mapping position codes to ordered player ids. Saves overwrite wholesale.
package squadfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sonic "github.com/bytedance/sonic"

	"fpltransfer/internal/domain/player"
)

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Save(_ context.Context, grouped map[player.Position][]int64) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create squad dir: %w", err)
		}
	}

	body, err := sonic.Marshal(grouped)
	if err != nil {
		return fmt.Errorf("encode squad: %w", err)
	}

	if err := os.WriteFile(s.path, body, 0o644); err != nil {
		return fmt.Errorf("write squad file: %w", err)
	}

	return nil
}

func (s *Store) Load(_ context.Context) (map[player.Position][]int64, error) {
	body, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[player.Position][]int64{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read squad file: %w", err)
	}

	var grouped map[player.Position][]int64
	if err := sonic.Unmarshal(body, &grouped); err != nil {
		return nil, fmt.Errorf("decode squad file: %w", err)
	}
	if grouped == nil {
		grouped = map[player.Position][]int64{}
	}

	return grouped, nil
}
