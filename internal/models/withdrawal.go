package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Withdrawal statuses
const (
	WithdrawalStatusPending  = "pending"
	WithdrawalStatusSettled  = "settled"
	WithdrawalStatusReversed = "reversed"
)

// Withdrawal is debited from the balance at request time and settled out of
// band. A failed settlement moves it to reversed with a compensating credit.
type Withdrawal struct {
	ID          uint            `gorm:"primarykey"`
	AccountID   uint            `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Destination string          `gorm:"not null"`
	Status      string          `gorm:"not null;default:'pending'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
