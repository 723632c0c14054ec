package repositories

import (
	"fmt"

	"crease/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a GORM-backed payment repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(record *models.PaymentRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create payment record: %w", err)
	}
	return nil
}

func (r *paymentRepository) GetByOrderRef(orderRef string) (*models.PaymentRecord, error) {
	var record models.PaymentRecord
	if err := r.db.Where("order_ref = ?", orderRef).First(&record).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get payment record: %w", err)
	}
	return &record, nil
}

func (r *paymentRepository) GetByOrderRefForUpdate(orderRef string) (*models.PaymentRecord, error) {
	var record models.PaymentRecord
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("order_ref = ?", orderRef).
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to lock payment record: %w", err)
	}
	return &record, nil
}

func (r *paymentRepository) MarkCompleted(id uint, externalRef string) error {
	result := r.db.Model(&models.PaymentRecord{}).
		Where("id = ? AND status = ?", id, models.PaymentStatusCreated).
		Updates(map[string]interface{}{
			"status":               models.PaymentStatusCompleted,
			"external_payment_ref": externalRef,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to complete payment record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *paymentRepository) MarkFailed(id uint) error {
	result := r.db.Model(&models.PaymentRecord{}).
		Where("id = ? AND status = ?", id, models.PaymentStatusCreated).
		Update("status", models.PaymentStatusFailed)
	if result.Error != nil {
		return fmt.Errorf("failed to fail payment record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
