package contest

import (
	"context"

	"crease/internal/models"
)

// Service is the contest registry. It owns each contest's capacity counter
// and active flag; slot reservation is the only way joined_teams moves up.
type Service interface {
	Get(ctx context.Context, contestID uint) (*models.Contest, error)

	// Register ingests a contest record supplied by content management.
	Register(ctx context.Context, contest *models.Contest) error

	// ReserveSlot atomically claims capacity. Against the last remaining
	// slot, exactly one concurrent caller succeeds.
	ReserveSlot(ctx context.Context, contestID uint) error

	// ReleaseSlot returns capacity claimed by a reservation whose join did
	// not complete.
	ReleaseSlot(ctx context.Context, contestID uint) error

	// Close deactivates the contest at match lock; further reservations
	// fail with ErrContestClosed.
	Close(ctx context.Context, contestID uint) error
}
