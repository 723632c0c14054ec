package repositories

import "crease/internal/models"

// WithdrawalRepository owns withdrawal rows.
type WithdrawalRepository interface {
	Create(withdrawal *models.Withdrawal) error
	GetByID(id uint) (*models.Withdrawal, error)
	GetByIDForUpdate(id uint) (*models.Withdrawal, error)

	// UpdateStatus transitions from one status to another; the guard on
	// the previous status makes settlement and reversal one-shot.
	UpdateStatus(id uint, from, to string) error

	ListPending(limit int) ([]models.Withdrawal, error)
}
