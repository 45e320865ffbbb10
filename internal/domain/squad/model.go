package squad

import (
	"fmt"

	"fpltransfer/internal/domain/player"
)

// Size is the full squad size across all positions.
const Size = 15

// Squad is the user's current 15-player selection.
type Squad struct {
	Players []player.Player
}

// Complete reports whether every position has exactly its required number of
// players. Only complete squads persist and may be queried for recommendations.
func (s Squad) Complete() error {
	counts := make(map[player.Position]int, len(player.RequiredCounts))
	for _, p := range s.Players {
		counts[p.Position]++
	}

	for _, pos := range player.AllPositions {
		required := player.RequiredCounts[pos]
		if counts[pos] != required {
			return fmt.Errorf("position %s requires %d players, have %d", pos, required, counts[pos])
		}
	}
	if len(s.Players) != Size {
		return fmt.Errorf("squad requires %d players, have %d", Size, len(s.Players))
	}

	return nil
}

// Contains reports whether the squad already holds the given player id.
func (s Squad) Contains(id int64) bool {
	for _, p := range s.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// ClubCounts returns the number of squad members per club.
func (s Squad) ClubCounts() map[int64]int {
	counts := make(map[int64]int)
	for _, p := range s.Players {
		counts[p.ClubID]++
	}
	return counts
}

// Without returns the squad minus one player, preserving order.
func (s Squad) Without(id int64) Squad {
	remaining := make([]player.Player, 0, len(s.Players))
	for _, p := range s.Players {
		if p.ID == id {
			continue
		}
		remaining = append(remaining, p)
	}
	return Squad{Players: remaining}
}

// GroupIDs partitions the squad's player ids by position, preserving the
// selection order within each position.
func (s Squad) GroupIDs() map[player.Position][]int64 {
	grouped := make(map[player.Position][]int64, len(player.RequiredCounts))
	for _, p := range s.Players {
		grouped[p.Position] = append(grouped[p.Position], p.ID)
	}
	return grouped
}
