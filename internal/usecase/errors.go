package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("resource not found")
	ErrSquadIncomplete     = errors.New("squad is incomplete")
	ErrNoPlayerData        = errors.New("no player data available, refresh data first")
	ErrNoFinishedGameweeks = errors.New("no finished gameweeks available")
	ErrUpstreamUnavailable = errors.New("upstream api unavailable")
)
