package services

import "errors"

// Sentinel errors shared across services, mapped to HTTP statuses in the
// handler layer.
var (
	ErrMatchNotFound = errors.New("match not found")
	ErrTeamNotFound  = errors.New("team not found")

	ErrInvalidScore = errors.New("goal counts must be zero or positive")
	ErrEmptyRoster  = errors.New("roster must contain at least one team")
)
