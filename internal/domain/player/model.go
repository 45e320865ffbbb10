package player

import (
	"fmt"
	"time"
)

// Position represents the four FPL squad roles.
type Position string

const (
	PositionGoalkeeper Position = "GKP"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

// AllPositions lists positions in squad display order.
var AllPositions = []Position{
	PositionGoalkeeper,
	PositionDefender,
	PositionMidfielder,
	PositionForward,
}

// RequiredCounts is the number of squad slots each position must fill.
var RequiredCounts = map[Position]int{
	PositionGoalkeeper: 2,
	PositionDefender:   5,
	PositionMidfielder: 5,
	PositionForward:    3,
}

func ValidPosition(p Position) bool {
	_, ok := RequiredCounts[p]
	return ok
}

// Player is one row of the ingested player table. Cost is in tenths of £m.
type Player struct {
	ID                        int64
	Name                      string
	FullName                  string
	Club                      string
	ClubID                    int64
	Position                  Position
	Cost                      int
	AvgPointsLast3            float64
	AvgFixtureDifficultyNext3 float64
	TotalPoints               int
	Minutes                   int
	RecentMinutes             int
	UpdatedAt                 time.Time
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.ClubID <= 0 {
		return fmt.Errorf("player club id must be greater than zero")
	}
	if p.Cost < 0 {
		return fmt.Errorf("player cost cannot be negative")
	}

	return nil
}
