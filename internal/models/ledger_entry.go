package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger entry types
const (
	EntryTypeDeposit    = "deposit"
	EntryTypeEntryFee   = "entry_fee"
	EntryTypeWithdrawal = "withdrawal"
	EntryTypeReversal   = "reversal"
	EntryTypeWinnings   = "winnings"
)

// LedgerEntry is the audit trail of balance mutations. One row is written in
// the same database transaction as every credit or debit; the amount is
// signed (negative for debits).
type LedgerEntry struct {
	ID        uint            `gorm:"primarykey"`
	AccountID uint            `gorm:"not null;index"`
	Type      string          `gorm:"not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Reference string          `gorm:"index"`
	Metadata  JSON            `gorm:"type:jsonb"`
	CreatedAt time.Time
}
