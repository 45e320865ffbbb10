package usecase

import "context"

// ExternalBootstrap is the upstream snapshot of every player, club, and
// gameweek known to the game. Fields the optimizer does not read are ignored.
type ExternalBootstrap struct {
	Events   []ExternalEvent
	Clubs    []ExternalClub
	Elements []ExternalElement
}

// ExternalEvent is one gameweek in the season calendar.
type ExternalEvent struct {
	ID       int
	Finished bool
}

// ExternalClub maps a club id to its display name.
type ExternalClub struct {
	ID   int64
	Name string
}

// ExternalElement is one raw player entry from the bootstrap payload.
// NowCost is in tenths of £m; ElementType is the provider's position code.
type ExternalElement struct {
	ID          int64
	WebName     string
	FirstName   string
	SecondName  string
	ClubID      int64
	ElementType int
	NowCost     int
	TotalPoints int
	Minutes     int
}

// ExternalLiveStat is one player's tally for a single gameweek.
type ExternalLiveStat struct {
	PlayerID int64
	Points   int
	Minutes  int
}

// ExternalFixture is one scheduled or completed match. Event is nil while the
// fixture has not been assigned to a gameweek.
type ExternalFixture struct {
	Event          *int
	Finished       bool
	HomeClubID     int64
	AwayClubID     int64
	HomeDifficulty int
	AwayDifficulty int
}

// StatsProvider describes what ingestion needs from the upstream statistics API.
type StatsProvider interface {
	FetchBootstrap(ctx context.Context) (ExternalBootstrap, error)
	FetchLiveStats(ctx context.Context, gameweek int) ([]ExternalLiveStat, error)
	FetchFixtures(ctx context.Context) ([]ExternalFixture, error)
}
