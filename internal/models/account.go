package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account owns a user's money. Balance is only ever mutated by the ledger
// service inside a database transaction; nothing else writes it.
type Account struct {
	ID                  uint            `gorm:"primarykey"`
	Role                string          `gorm:"not null;default:'user'"`
	Balance             decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalWinnings       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalContestsJoined int             `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
