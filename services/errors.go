package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Shared error taxonomy, referenced by the HTTP error mapping.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules
	ErrValidationFailed    = errors.New("validation failed")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidDay          = errors.New("invalid tournament day")
	ErrInvalidDivision     = errors.New("invalid division")
	ErrInvalidRole         = errors.New("invalid user role")
	ErrPlayerNameRequired  = errors.New("player name is required")
	ErrTeamNameRequired    = errors.New("team name is required")
	ErrTeamMembersRequired = errors.New("a calcutta team needs at least two players")
	ErrHoleOutOfRange      = errors.New("hole number must be between 1 and 18")
	ErrHoleInvalidPar      = errors.New("hole par must be between 3 and 6")

	// Conflicts
	ErrPlayerNameConflict = errors.New("a player with this name already exists")
	ErrRoundConflict      = errors.New("a round is already recorded for this player and day")
	ErrTeamNameConflict   = errors.New("calcutta team name already exists")
	ErrTeamMemberConflict = errors.New("player is already on a calcutta team")
	ErrUserEmailConflict  = errors.New("email address is already in use")

	// Authentication and authorization
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")

	// Entity-specific not-found errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrHoleNotFound   = errors.New("hole not found")
	ErrRoundNotFound  = errors.New("round not found")
	ErrTeamNotFound   = errors.New("calcutta team not found")
	ErrUserNotFound   = errors.New("user not found")

	// Deletion blocked by references
	ErrPlayerInUse = errors.New("player cannot be deleted while rounds or team memberships exist")

	// Optional infrastructure
	ErrPhotoStorageUnavailable = errors.New("photo storage is not configured")
)

// FieldErrors maps field names to messages for 422 responses. The round
// entry form renders these next to the offending inputs.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed on: %s", strings.Join(fields, ", "))
}
