// Package validation checks request shapes before any mutation happens.
package validation

import (
	"errors"
	"fmt"

	"crease/internal/models"
)

// Validation errors
var (
	ErrRosterSize        = fmt.Errorf("roster must have exactly %d players", models.RosterSize)
	ErrDuplicatePlayer   = errors.New("roster contains duplicate players")
	ErrCaptainNotInTeam  = errors.New("captain must be in the roster")
	ErrViceNotInTeam     = errors.New("vice-captain must be in the roster")
	ErrCaptainIsVice     = errors.New("captain and vice-captain must be distinct")
	ErrMissingPlayerRole = errors.New("every player needs a role")
)

// ValidateRoster checks roster shape, captain and vice-captain membership.
// It runs before the join transaction; a failure here has no side effects.
func ValidateRoster(players []models.TeamPlayer, captainID, viceCaptainID string) error {
	if len(players) != models.RosterSize {
		return ErrRosterSize
	}

	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if p.Role == "" {
			return ErrMissingPlayerRole
		}
		if seen[p.PlayerID] {
			return ErrDuplicatePlayer
		}
		seen[p.PlayerID] = true
	}

	if captainID == viceCaptainID {
		return ErrCaptainIsVice
	}
	if !seen[captainID] {
		return ErrCaptainNotInTeam
	}
	if !seen[viceCaptainID] {
		return ErrViceNotInTeam
	}
	return nil
}
