package ledger

import (
	"context"

	"crease/internal/models"

	"github.com/shopspring/decimal"
)

// Service is the single writer of account balances. Every mutation happens
// inside a database transaction together with its audit ledger entry.
type Service interface {
	// Credit adds amount to the account balance.
	Credit(ctx context.Context, accountID uint, amount decimal.Decimal, entryType, reference string) error

	// Debit subtracts amount; fails with ErrInsufficientFunds and no
	// mutation when the balance does not cover it.
	Debit(ctx context.Context, accountID uint, amount decimal.Decimal, entryType, reference string) error

	// CreditWinnings credits the balance and the winnings counter, used by
	// contest settlement.
	CreditWinnings(ctx context.Context, accountID uint, amount decimal.Decimal, reference string) error

	GetAccount(ctx context.Context, accountID uint) (*models.Account, error)
	GetBalance(ctx context.Context, accountID uint) (decimal.Decimal, error)
	GetEntries(ctx context.Context, accountID uint, limit, offset int) ([]models.LedgerEntry, error)
}
