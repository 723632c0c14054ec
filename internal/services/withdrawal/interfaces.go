package withdrawal

import (
	"context"

	"crease/internal/models"

	"github.com/shopspring/decimal"
)

// Service handles withdrawals. Funds are debited when the request is made,
// so the same balance cannot back two pending withdrawals; a failed
// settlement is compensated by ReverseSettlement.
type Service interface {
	// Request debits the amount and records a pending withdrawal for
	// out-of-band settlement.
	Request(ctx context.Context, accountID uint, amount decimal.Decimal, destination string) (*models.Withdrawal, error)

	// MarkSettled finalizes a pending withdrawal after the gateway
	// confirms the payout.
	MarkSettled(ctx context.Context, withdrawalID uint) error

	// ReverseSettlement credits the amount back after the gateway reports
	// a failed payout. Idempotent: reversing twice credits once.
	ReverseSettlement(ctx context.Context, withdrawalID uint) error

	Get(ctx context.Context, withdrawalID uint) (*models.Withdrawal, error)
}
