package models

import "time"

// TournamentDay identifies which day of the tournament a round belongs to,
// matching the ENUM in the DB. DayAll marks a round that counts for every day.
type TournamentDay string

const (
	DayFriday   TournamentDay = "FRI"
	DaySaturday TournamentDay = "SAT"
	DaySunday   TournamentDay = "SUN"
	DayAll      TournamentDay = "ALL"
)

func (d TournamentDay) Valid() bool {
	switch d {
	case DayFriday, DaySaturday, DaySunday, DayAll:
		return true
	}
	return false
}

// PlayableDays are the days a leaderboard or scorecard can be requested for.
// DayAll is a submission value, not a query value.
var PlayableDays = []TournamentDay{DayFriday, DaySaturday, DaySunday}

// Round is one player's 18-hole card for a tournament day.
// HoleScores is ordered hole 1 through 18; entries are gross strokes.
type Round struct {
	ID         int           `json:"id" db:"id"`
	PlayerID   int           `json:"player_id" db:"player_id"`
	Day        TournamentDay `json:"day" db:"day"`
	HoleScores []int         `json:"gross_holes" db:"hole_scores"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`

	// Optional joined entity, populated by list queries.
	Player *Player `json:"player,omitempty" db:"-"`
}
