package withdrawal

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config holds configuration for withdrawal processing
type Config struct {
	// MinAmount is the platform's minimum withdrawal threshold.
	MinAmount decimal.Decimal

	// ReversalRetries bounds retries of the compensating credit before
	// the failure is logged for manual reconciliation.
	ReversalRetries int

	// ReversalBackoff is the base delay between those retries.
	ReversalBackoff time.Duration
}

// Defaults for zero-valued Config fields.
const (
	DefaultReversalRetries = 5
	DefaultReversalBackoff = 50 * time.Millisecond
)

// DefaultMinAmount applies when no threshold is configured.
var DefaultMinAmount = decimal.NewFromInt(100)
