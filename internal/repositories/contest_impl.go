package repositories

import (
	"fmt"

	"crease/internal/models"

	"gorm.io/gorm"
)

type contestRepository struct {
	db *gorm.DB
}

// NewContestRepository creates a GORM-backed contest repository.
func NewContestRepository(db *gorm.DB) ContestRepository {
	return &contestRepository{db: db}
}

func (r *contestRepository) Create(contest *models.Contest) error {
	if err := r.db.Create(contest).Error; err != nil {
		return fmt.Errorf("failed to create contest: %w", err)
	}
	return nil
}

func (r *contestRepository) GetByID(id uint) (*models.Contest, error) {
	var contest models.Contest
	if err := r.db.First(&contest, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrContestNotFound
		}
		return nil, fmt.Errorf("failed to get contest: %w", err)
	}
	return &contest, nil
}

func (r *contestRepository) ListByMatch(matchRef string) ([]models.Contest, error) {
	var contests []models.Contest
	if err := r.db.Where("match_ref = ?", matchRef).Find(&contests).Error; err != nil {
		return nil, fmt.Errorf("failed to list contests: %w", err)
	}
	return contests, nil
}

func (r *contestRepository) ReserveSlot(contestID uint) error {
	// Capacity and active checks live in the statement itself, so two
	// racing joins against the last slot resolve to exactly one winner.
	result := r.db.Model(&models.Contest{}).
		Where("id = ? AND active = ? AND joined_teams < max_teams", contestID, true).
		Update("joined_teams", gorm.Expr("joined_teams + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to reserve slot: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		contest, err := r.GetByID(contestID)
		if err != nil {
			return err
		}
		if !contest.Active {
			return ErrContestClosed
		}
		return ErrContestFull
	}
	return nil
}

func (r *contestRepository) ReleaseSlot(contestID uint) error {
	result := r.db.Model(&models.Contest{}).
		Where("id = ? AND joined_teams > 0", contestID).
		Update("joined_teams", gorm.Expr("joined_teams - 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to release slot: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrContestNotFound
	}
	return nil
}

func (r *contestRepository) Close(contestID uint) error {
	result := r.db.Model(&models.Contest{}).
		Where("id = ?", contestID).
		Update("active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to close contest: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrContestNotFound
	}
	return nil
}
