package models

import "time"

// Division splits the field into two flights by playing strength,
// matching the ENUM in the DB. Calcutta teams pair one player from each.
type Division string

const (
	DivisionA Division = "A"
	DivisionB Division = "B"
)

func (d Division) Valid() bool {
	return d == DivisionA || d == DivisionB
}

// Player is a tournament entrant.
type Player struct {
	ID        int       `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Division  Division  `json:"division" db:"division"`
	Handicap  int       `json:"handicap" db:"handicap"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	PhotoKey  *string   `json:"-" db:"photo_key"`
	PhotoURL  *string   `json:"photo_url,omitempty" db:"-"`
}

func (p Player) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
