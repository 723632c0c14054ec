package repositories

import "crease/internal/models"

// PaymentRepository owns payment records. GetByOrderRefForUpdate takes a row
// lock so concurrent duplicate confirmations of the same order serialize.
type PaymentRepository interface {
	Create(record *models.PaymentRecord) error
	GetByOrderRef(orderRef string) (*models.PaymentRecord, error)
	GetByOrderRefForUpdate(orderRef string) (*models.PaymentRecord, error)

	// MarkCompleted transitions created -> completed and stores the
	// external payment reference. The guard on the previous status keeps
	// the transition one-shot.
	MarkCompleted(id uint, externalRef string) error

	// MarkFailed transitions created -> failed.
	MarkFailed(id uint) error
}
