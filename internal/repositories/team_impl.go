package repositories

import (
	"fmt"

	"crease/internal/models"

	"gorm.io/gorm"
)

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a GORM-backed team repository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(team *models.Team) error {
	if err := r.db.Create(team).Error; err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

func (r *teamRepository) GetByID(id string) (*models.Team, error) {
	var team models.Team
	if err := r.db.Where("id = ?", id).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return &team, nil
}

func (r *teamRepository) ExistsForContest(accountID, contestID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Team{}).
		Where("account_id = ? AND contest_id = ?", accountID, contestID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check existing entry: %w", err)
	}
	return count > 0, nil
}

func (r *teamRepository) ListByContest(contestID uint) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Where("contest_id = ?", contestID).
		Order("total_points DESC, created_at ASC").
		Find(&teams).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (r *teamRepository) UpdateTotalPoints(teamID string, points int) error {
	result := r.db.Model(&models.Team{}).
		Where("id = ?", teamID).
		Update("total_points", points)
	if result.Error != nil {
		return fmt.Errorf("failed to update team points: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTeamNotFound
	}
	return nil
}
