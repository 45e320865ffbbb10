// Package transfer holds the transfer-scoring core: a composite metric over
// recent form, upcoming fixture difficulty, and points-per-cost value.
package transfer

import "fpltransfer/internal/domain/player"

// MaxPerClub is the league rule limiting a squad to 3 players per club.
const MaxPerClub = 3

// TopN caps every recommendation list.
const TopN = 5

// Weights of the composite score. Fixed design constants.
const (
	formWeight    = 0.5
	fixtureWeight = 0.3
	valueWeight   = 0.2
)

// Score computes the raw transfer score for a player. Fixture difficulty is
// expected in [1,5]; out-of-range values are not clamped. A zero cost drops
// the value term rather than dividing by zero.
func Score(p player.Player) float64 {
	costInMillions := float64(p.Cost) / 10

	var value float64
	if costInMillions > 0 {
		value = p.AvgPointsLast3 / costInMillions
	}

	return p.AvgPointsLast3*formWeight +
		(6-p.AvgFixtureDifficultyNext3)*fixtureWeight +
		value*valueWeight
}

// Candidate is a player scored as a transfer-in option. Never persisted;
// always recomputed against the current repository snapshot.
type Candidate struct {
	Player player.Player
	Score  float64
}

// Move pairs an outgoing squad player with their best-ranked replacement.
// Improvement may be negative; filtering on it is left to the viewer.
type Move struct {
	Out         player.Player
	OutScore    float64
	In          Candidate
	Improvement float64
}
