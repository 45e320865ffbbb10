package httpapi

import (
	"fmt"
	"math"
	"time"

	"fpltransfer/internal/domain/player"
	"fpltransfer/internal/domain/transfer"
)

type playerDTO struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	FullName      string  `json:"fullName"`
	Club          string  `json:"club"`
	ClubID        int64   `json:"clubId"`
	Position      string  `json:"position"`
	CostTenths    int     `json:"costTenths"`
	CostLabel     string  `json:"costLabel"`
	AvgPoints     float64 `json:"avgPointsLast3"`
	AvgFDR        float64 `json:"avgFixtureDifficultyNext3"`
	FDRLabel      string  `json:"fdrLabel"`
	TotalPoints   int     `json:"totalPoints"`
	Minutes       int     `json:"minutes"`
	RecentMinutes int     `json:"recentMinutes"`
}

type candidateDTO struct {
	playerDTO
	Score float64 `json:"score"`
}

type moveDTO struct {
	Out         playerDTO    `json:"playerOut"`
	OutScore    float64      `json:"playerOutScore"`
	In          candidateDTO `json:"playerIn"`
	Improvement float64      `json:"improvement"`
}

type statusDTO struct {
	PlayerCount int     `json:"playerCount"`
	LastUpdated *string `json:"lastUpdated"`
}

type squadDTO struct {
	Players  []playerDTO        `json:"players"`
	Grouped  map[string][]int64 `json:"grouped"`
	Complete bool               `json:"complete"`
}

type refreshResultDTO struct {
	PlayerCount     int    `json:"playerCount"`
	Gameweeks       []int  `json:"gameweeks"`
	FailedGameweeks []int  `json:"failedGameweeks,omitempty"`
	Message         string `json:"message"`
}

type recommendationsDTO struct {
	Candidates []candidateDTO `json:"candidates"`
	Hint       string         `json:"hint,omitempty"`
}

type movesDTO struct {
	Moves []moveDTO `json:"moves"`
	Hint  string    `json:"hint,omitempty"`
}

const relaxBudgetHint = "No eligible transfers found. Try increasing your budget."

func toPlayerDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:            p.ID,
		Name:          p.Name,
		FullName:      p.FullName,
		Club:          p.Club,
		ClubID:        p.ClubID,
		Position:      string(p.Position),
		CostTenths:    p.Cost,
		CostLabel:     costLabel(p.Cost),
		AvgPoints:     p.AvgPointsLast3,
		AvgFDR:        p.AvgFixtureDifficultyNext3,
		FDRLabel:      fdrLabel(p.AvgFixtureDifficultyNext3),
		TotalPoints:   p.TotalPoints,
		Minutes:       p.Minutes,
		RecentMinutes: p.RecentMinutes,
	}
}

func toCandidateDTO(c transfer.Candidate) candidateDTO {
	return candidateDTO{
		playerDTO: toPlayerDTO(c.Player),
		Score:     c.Score,
	}
}

func toMoveDTO(m transfer.Move) moveDTO {
	return moveDTO{
		Out:         toPlayerDTO(m.Out),
		OutScore:    m.OutScore,
		In:          toCandidateDTO(m.In),
		Improvement: m.Improvement,
	}
}

func costLabel(tenths int) string {
	return fmt.Sprintf("£%.1fm", float64(tenths)/10)
}

// fdrLabel renders a traffic-light label for an average fixture difficulty.
// Halves round to even, so 2.5 stays green.
func fdrLabel(fdr float64) string {
	icon := "⚪"
	switch int(math.RoundToEven(fdr)) {
	case 1, 2:
		icon = "🟢"
	case 3:
		icon = "🟡"
	case 4, 5:
		icon = "🔴"
	}
	return fmt.Sprintf("%s %.1f", icon, fdr)
}

func formatTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
