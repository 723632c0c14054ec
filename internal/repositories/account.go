package repositories

import (
	"crease/internal/models"

	"github.com/shopspring/decimal"
)

// AccountRepository owns reads and guarded writes of account rows. Balance
// mutations are conditional single-statement updates so the check and the
// write cannot be separated by a concurrent writer.
type AccountRepository interface {
	Create(account *models.Account) error
	GetByID(id uint) (*models.Account, error)

	// Credit adds amount to the balance.
	Credit(accountID uint, amount decimal.Decimal) error

	// Debit subtracts amount, guarded by balance >= amount. Returns
	// ErrInsufficientFunds without mutating when the guard fails.
	Debit(accountID uint, amount decimal.Decimal) error

	// AddWinnings credits the balance and the winnings counter together.
	AddWinnings(accountID uint, amount decimal.Decimal) error

	IncrementContestsJoined(accountID uint) error

	CreateEntry(entry *models.LedgerEntry) error
	ListEntries(accountID uint, limit, offset int) ([]models.LedgerEntry, error)
}
