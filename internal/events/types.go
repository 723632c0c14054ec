package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentCompleted is emitted once per external payment reference.
type PaymentCompleted struct {
	AccountID          uint            `json:"account_id"`
	OrderRef           string          `json:"order_ref"`
	ExternalPaymentRef string          `json:"external_payment_ref"`
	Amount             decimal.Decimal `json:"amount"`
	OccurredAt         time.Time       `json:"occurred_at"`
}

// ContestJoined is emitted after a join transaction commits.
type ContestJoined struct {
	AccountID  uint            `json:"account_id"`
	ContestID  uint            `json:"contest_id"`
	TeamID     string          `json:"team_id"`
	EntryFee   decimal.Decimal `json:"entry_fee"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// WithdrawalRequested is emitted when funds are debited for settlement.
type WithdrawalRequested struct {
	WithdrawalID uint            `json:"withdrawal_id"`
	AccountID    uint            `json:"account_id"`
	Amount       decimal.Decimal `json:"amount"`
	Destination  string          `json:"destination"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

// WithdrawalReversed is emitted when a failed settlement is credited back.
type WithdrawalReversed struct {
	WithdrawalID uint            `json:"withdrawal_id"`
	AccountID    uint            `json:"account_id"`
	Amount       decimal.Decimal `json:"amount"`
	OccurredAt   time.Time       `json:"occurred_at"`
}
