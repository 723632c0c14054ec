package join

import (
	"context"

	"crease/internal/models"
)

// Service coordinates the contest-entry transaction: reserve a slot, debit
// the entry fee, persist the team and bump the account's join counter as one
// atomic unit. No partial application is ever observable.
type Service interface {
	JoinContest(ctx context.Context, req Request) (*models.Team, error)
}
