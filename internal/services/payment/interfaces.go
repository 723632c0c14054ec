package payment

import (
	"context"

	"crease/internal/models"

	"github.com/shopspring/decimal"
)

// Service reconciles externally confirmed payments into ledger credits.
// Confirmation is idempotent per external payment reference: replays and
// concurrent duplicate deliveries credit the account exactly once.
type Service interface {
	// CreateOrder opens a payment record and registers the order with the
	// gateway. The balance is untouched until confirmation.
	CreateOrder(ctx context.Context, accountID uint, amount decimal.Decimal) (*models.PaymentRecord, error)

	// ConfirmPayment applies a gateway confirmation. A record already
	// completed is a no-op success.
	ConfirmPayment(ctx context.Context, orderRef, externalPaymentRef string) error

	// FailOrder marks an open order failed; no credit happens.
	FailOrder(ctx context.Context, orderRef string) error

	GetOrder(ctx context.Context, orderRef string) (*models.PaymentRecord, error)
}

// Gateway is the external payment provider. The core only needs order
// creation; confirmations arrive out of band through the webhook.
type Gateway interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency string) (gatewayRef string, err error)
}
