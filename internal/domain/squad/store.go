package squad

import (
	"context"

	"fpltransfer/internal/domain/player"
)

// Store persists the user's squad selection across sessions as a mapping from
// position to ordered player ids. Saves overwrite wholesale; Load returns an
// empty mapping when nothing has been saved yet.
type Store interface {
	Save(ctx context.Context, grouped map[player.Position][]int64) error
	Load(ctx context.Context) (map[player.Position][]int64, error)
}
