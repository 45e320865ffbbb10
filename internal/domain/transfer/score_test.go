package transfer

import (
	"testing"

	"fpltransfer/internal/domain/player"
)

func TestScore_IncreasesWithRecentForm(t *testing.T) {
	base := player.Player{Cost: 50, AvgPointsLast3: 3.0, AvgFixtureDifficultyNext3: 3.0}
	better := base
	better.AvgPointsLast3 = 6.0

	if Score(better) <= Score(base) {
		t.Fatalf("expected score to increase with form: base=%f better=%f", Score(base), Score(better))
	}
}

func TestScore_DecreasesWithFixtureDifficulty(t *testing.T) {
	base := player.Player{Cost: 50, AvgPointsLast3: 3.0, AvgFixtureDifficultyNext3: 2.0}
	harder := base
	harder.AvgFixtureDifficultyNext3 = 4.5

	if Score(harder) >= Score(base) {
		t.Fatalf("expected score to decrease with difficulty: base=%f harder=%f", Score(base), Score(harder))
	}
}

func TestScore_ZeroCostOmitsValueTerm(t *testing.T) {
	p := player.Player{Cost: 0, AvgPointsLast3: 4.0, AvgFixtureDifficultyNext3: 3.0}

	got := Score(p)
	want := 4.0*0.5 + (6-3.0)*0.3
	if got != want {
		t.Fatalf("expected %f for zero-cost player, got %f", want, got)
	}
}

func TestScore_KnownValue(t *testing.T) {
	// 40 tenths = £4.0m, value term = 3.0/4.0.
	p := player.Player{Cost: 40, AvgPointsLast3: 3.0, AvgFixtureDifficultyNext3: 2.0}

	got := Score(p)
	want := 3.0*0.5 + (6-2.0)*0.3 + (3.0/4.0)*0.2
	if got != want {
		t.Fatalf("expected score %f, got %f", want, got)
	}
}

func TestScore_NoClampingOutsideFDRRange(t *testing.T) {
	p := player.Player{Cost: 50, AvgPointsLast3: 0, AvgFixtureDifficultyNext3: 7.0}

	if got := Score(p); got != (6-7.0)*0.3 {
		t.Fatalf("expected negative fixture term preserved, got %f", got)
	}
}
