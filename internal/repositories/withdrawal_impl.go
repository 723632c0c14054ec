package repositories

import (
	"fmt"

	"crease/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type withdrawalRepository struct {
	db *gorm.DB
}

// NewWithdrawalRepository creates a GORM-backed withdrawal repository.
func NewWithdrawalRepository(db *gorm.DB) WithdrawalRepository {
	return &withdrawalRepository{db: db}
}

func (r *withdrawalRepository) Create(withdrawal *models.Withdrawal) error {
	if err := r.db.Create(withdrawal).Error; err != nil {
		return fmt.Errorf("failed to create withdrawal: %w", err)
	}
	return nil
}

func (r *withdrawalRepository) GetByID(id uint) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	if err := r.db.First(&withdrawal, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("failed to get withdrawal: %w", err)
	}
	return &withdrawal, nil
}

func (r *withdrawalRepository) GetByIDForUpdate(id uint) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&withdrawal, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("failed to lock withdrawal: %w", err)
	}
	return &withdrawal, nil
}

func (r *withdrawalRepository) UpdateStatus(id uint, from, to string) error {
	result := r.db.Model(&models.Withdrawal{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return fmt.Errorf("failed to update withdrawal status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWithdrawalNotFound
	}
	return nil
}

func (r *withdrawalRepository) ListPending(limit int) ([]models.Withdrawal, error) {
	var withdrawals []models.Withdrawal
	err := r.db.
		Where("status = ?", models.WithdrawalStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&withdrawals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending withdrawals: %w", err)
	}
	return withdrawals, nil
}
