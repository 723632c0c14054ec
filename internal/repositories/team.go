package repositories

import "crease/internal/models"

// TeamRepository owns team rows. Teams are written once by the join
// transaction; only the scoring feed updates points afterwards.
type TeamRepository interface {
	Create(team *models.Team) error
	GetByID(id string) (*models.Team, error)

	// ExistsForContest reports whether the account already fielded a team
	// in the contest, for the single-entry policy.
	ExistsForContest(accountID, contestID uint) (bool, error)

	// ListByContest returns teams ordered by total points descending,
	// creation time ascending. The ordering is the leaderboard's input.
	ListByContest(contestID uint) ([]models.Team, error)

	// UpdateTotalPoints applies a point total from the scoring feed.
	UpdateTotalPoints(teamID string, points int) error
}
