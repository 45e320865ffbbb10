package sqlite

import (
	"time"

	"fpltransfer/internal/domain/player"
)

type playerTableModel struct {
	ID                        int64   `db:"id"`
	Name                      string  `db:"name"`
	FullName                  string  `db:"full_name"`
	Club                      string  `db:"club"`
	ClubID                    int64   `db:"club_id"`
	Position                  string  `db:"position"`
	Cost                      int     `db:"cost"`
	AvgPointsLast3            float64 `db:"avg_points_last_3"`
	AvgFixtureDifficultyNext3 float64 `db:"avg_fixture_difficulty_next_3"`
	TotalPoints               int     `db:"total_points"`
	Minutes                   int     `db:"minutes"`
	RecentMinutes             int     `db:"recent_minutes"`
	UpdatedAt                 int64   `db:"updated_at"`
}

func toTableModel(p player.Player, updatedAt time.Time) playerTableModel {
	return playerTableModel{
		ID:                        p.ID,
		Name:                      p.Name,
		FullName:                  p.FullName,
		Club:                      p.Club,
		ClubID:                    p.ClubID,
		Position:                  string(p.Position),
		Cost:                      p.Cost,
		AvgPointsLast3:            p.AvgPointsLast3,
		AvgFixtureDifficultyNext3: p.AvgFixtureDifficultyNext3,
		TotalPoints:               p.TotalPoints,
		Minutes:                   p.Minutes,
		RecentMinutes:             p.RecentMinutes,
		UpdatedAt:                 updatedAt.Unix(),
	}
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:                        m.ID,
		Name:                      m.Name,
		FullName:                  m.FullName,
		Club:                      m.Club,
		ClubID:                    m.ClubID,
		Position:                  player.Position(m.Position),
		Cost:                      m.Cost,
		AvgPointsLast3:            m.AvgPointsLast3,
		AvgFixtureDifficultyNext3: m.AvgFixtureDifficultyNext3,
		TotalPoints:               m.TotalPoints,
		Minutes:                   m.Minutes,
		RecentMinutes:             m.RecentMinutes,
		UpdatedAt:                 time.Unix(m.UpdatedAt, 0).UTC(),
	}
}
