package squadfile

import (
	"path/filepath"
	"testing"

	"fpltransfer/internal/domain/player"
)

func TestStore_SaveThenLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "squad.json"))

	saved := map[player.Position][]int64{
		player.PositionGoalkeeper: {11, 7},
		player.PositionDefender:   {20, 21, 22, 23, 24},
		player.PositionMidfielder: {30, 31, 32, 33, 34},
		player.PositionForward:    {40, 41, 42},
	}
	if err := store.Save(t.Context(), saved); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Load(t.Context())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	for pos, want := range saved {
		got := loaded[pos]
		if len(got) != len(want) {
			t.Fatalf("position %s: want %d ids, got %d", pos, len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("position %s index %d: order not preserved (%d vs %d)", pos, i, want[i], got[i])
			}
		}
	}
}

func TestStore_LoadMissingFileReturnsEmptyMapping(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))

	loaded, err := store.Load(t.Context())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty mapping, got %v", loaded)
	}
}

func TestStore_SaveOverwritesWholesale(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "squad.json"))

	first := map[player.Position][]int64{player.PositionForward: {1, 2, 3}}
	if err := store.Save(t.Context(), first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	second := map[player.Position][]int64{player.PositionGoalkeeper: {9, 8}}
	if err := store.Save(t.Context(), second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	loaded, err := store.Load(t.Context())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded[player.PositionForward]) != 0 {
		t.Fatalf("expected forwards gone after overwrite, got %v", loaded[player.PositionForward])
	}
	if len(loaded[player.PositionGoalkeeper]) != 2 {
		t.Fatalf("expected two goalkeepers, got %v", loaded[player.PositionGoalkeeper])
	}
}
