package models

import "time"

// UserRole controls what an operator account may do. Scorers record rounds;
// admins additionally manage players, holes and teams.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleScorer UserRole = "scorer"
)

func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleScorer
}

// User is an operator account for the scoring desk, not a tournament player.
type User struct {
	ID           int       `json:"id" db:"id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Role         UserRole  `json:"role" db:"role"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
