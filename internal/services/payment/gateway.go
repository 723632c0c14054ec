package payment

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"
)

// StripeGateway creates payment intents with Stripe.
type StripeGateway struct{}

// NewStripeGateway configures the Stripe client from the environment.
func NewStripeGateway() *StripeGateway {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return &StripeGateway{}
}

func (g *StripeGateway) CreateOrder(ctx context.Context, amount decimal.Decimal, currency string) (string, error) {
	// Stripe amounts are in minor units.
	minorUnits := amount.Mul(decimal.NewFromInt(100)).IntPart()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(minorUnits),
		Currency: stripe.String(currency),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}
	return intent.ID, nil
}
