package repositories

import "crease/internal/models"

// ContestRepository owns contest capacity state. ReserveSlot and ReleaseSlot
// are guarded single-statement updates; under a transaction the touched row
// stays locked until commit, serializing joins per contest.
type ContestRepository interface {
	Create(contest *models.Contest) error
	GetByID(id uint) (*models.Contest, error)
	ListByMatch(matchRef string) ([]models.Contest, error)

	// ReserveSlot increments joined_teams if the contest is active and has
	// capacity. Returns ErrContestFull or ErrContestClosed otherwise.
	ReserveSlot(contestID uint) error

	// ReleaseSlot decrements joined_teams, compensating a reservation.
	ReleaseSlot(contestID uint) error

	// Close marks the contest inactive at match lock.
	Close(contestID uint) error
}
