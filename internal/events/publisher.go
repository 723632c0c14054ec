// Package events publishes domain events after ledger-affecting
// transactions commit. Consumers (settlement, notifications, reporting)
// are downstream; publishing failures never roll back a commit.
package events

import "context"

// Topics
const (
	TopicPaymentCompleted   = "payment_completed"
	TopicContestJoined      = "contest_joined"
	TopicWithdrawalRequest  = "withdrawal_requested"
	TopicWithdrawalReversed = "withdrawal_reversed"
)

// Publisher emits domain events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
}

// NoopPublisher discards events; used in tests and when no broker is
// configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }
