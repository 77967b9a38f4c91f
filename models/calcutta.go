package models

import "time"

// CalcuttaTeam pairs players across divisions for the calcutta side game.
type CalcuttaTeam struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Players []Player `json:"players,omitempty" db:"-"`
}

// ScorecardRow is one display line of a calcutta scorecard. Player rows carry
// a net total; the team best-ball row does not (handicaps are per player).
// A zero in Scores means the hole has not been entered.
type ScorecardRow struct {
	Name        string `json:"name"`
	Scores      []int  `json:"scores"`
	Out         int    `json:"out"`
	In          int    `json:"in"`
	Gross       int    `json:"gross"`
	Net         *int   `json:"net,omitempty"`
	IsTeamScore bool   `json:"is_team_score"`
}

// CalcuttaScorecard is the full card for one team on one day:
// a row per player followed by the team best-ball row.
type CalcuttaScorecard struct {
	TeamID   int            `json:"team_id"`
	TeamName string         `json:"team_name"`
	Day      TournamentDay  `json:"day"`
	Rows     []ScorecardRow `json:"rows"`
}
