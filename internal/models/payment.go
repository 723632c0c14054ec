package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment statuses
const (
	PaymentStatusCreated   = "created"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// PaymentRecord tracks one gateway order from creation to confirmation.
// ExternalPaymentRef is unique once present: a given gateway confirmation
// credits the account at most once.
type PaymentRecord struct {
	ID                 uint            `gorm:"primarykey"`
	AccountID          uint            `gorm:"not null;index"`
	OrderRef           string          `gorm:"uniqueIndex;not null"`
	GatewayRef         string          // gateway-side order id, set at creation
	ExternalPaymentRef *string         `gorm:"uniqueIndex"`
	Amount             decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status             string          `gorm:"not null;default:'created'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
