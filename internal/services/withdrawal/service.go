package withdrawal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"crease/internal/events"
	"crease/internal/models"
	"crease/internal/repositories"

	"github.com/shopspring/decimal"
)

type service struct {
	store     repositories.Store
	publisher events.Publisher
	config    Config
}

// NewService creates a new withdrawal service
func NewService(store repositories.Store, publisher events.Publisher, config Config) Service {
	if store == nil {
		panic("store is required")
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if config.MinAmount.IsZero() {
		config.MinAmount = DefaultMinAmount
	}
	if config.ReversalRetries == 0 {
		config.ReversalRetries = DefaultReversalRetries
	}
	if config.ReversalBackoff == 0 {
		config.ReversalBackoff = DefaultReversalBackoff
	}
	return &service{
		store:     store,
		publisher: publisher,
		config:    config,
	}
}

func (s *service) Request(ctx context.Context, accountID uint, amount decimal.Decimal, destination string) (*models.Withdrawal, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if amount.LessThan(s.config.MinAmount) {
		return nil, ErrBelowMinimum
	}

	withdrawal := &models.Withdrawal{
		AccountID:   accountID,
		Amount:      amount,
		Destination: destination,
		Status:      models.WithdrawalStatusPending,
	}

	err := s.store.ExecuteInTransaction(func(tx repositories.Store) error {
		if err := tx.Accounts().Debit(accountID, amount); err != nil {
			return err
		}
		if err := tx.Withdrawals().Create(withdrawal); err != nil {
			return err
		}
		return tx.Accounts().CreateEntry(&models.LedgerEntry{
			AccountID: accountID,
			Type:      models.EntryTypeWithdrawal,
			Amount:    amount.Neg(),
			Reference: fmt.Sprintf("withdrawal:%d", withdrawal.ID),
			Metadata: models.NewJSON(map[string]interface{}{
				"destination": destination,
			}),
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrInsufficientFunds):
			return nil, ErrInsufficientFunds
		case errors.Is(err, repositories.ErrAccountNotFound):
			return nil, ErrAccountNotFound
		default:
			return nil, err
		}
	}

	event := events.WithdrawalRequested{
		WithdrawalID: withdrawal.ID,
		AccountID:    accountID,
		Amount:       amount,
		Destination:  destination,
		OccurredAt:   time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, events.TopicWithdrawalRequest, event); err != nil {
		log.Printf("failed to publish withdrawal event %d: %v", withdrawal.ID, err)
	}
	return withdrawal, nil
}

func (s *service) MarkSettled(ctx context.Context, withdrawalID uint) error {
	err := s.store.ExecuteInTransaction(func(tx repositories.Store) error {
		withdrawal, err := tx.Withdrawals().GetByIDForUpdate(withdrawalID)
		if err != nil {
			return err
		}
		if withdrawal.Status == models.WithdrawalStatusSettled {
			return nil
		}
		if withdrawal.Status != models.WithdrawalStatusPending {
			return ErrNotPending
		}
		return tx.Withdrawals().UpdateStatus(withdrawalID,
			models.WithdrawalStatusPending, models.WithdrawalStatusSettled)
	})
	if errors.Is(err, repositories.ErrWithdrawalNotFound) {
		return ErrWithdrawalNotFound
	}
	return err
}

func (s *service) ReverseSettlement(ctx context.Context, withdrawalID uint) error {
	var reversed *models.Withdrawal

	// The compensating credit must not be lost; transient conflicts are
	// retried with backoff, and only then handed to manual reconciliation.
	var err error
	backoff := s.config.ReversalBackoff
	for attempt := 0; attempt <= s.config.ReversalRetries; attempt++ {
		reversed, err = s.reverseOnce(withdrawalID)
		if !errors.Is(err, repositories.ErrConcurrencyConflict) {
			break
		}
		time.Sleep(backoff)
		backoff *= 2
	}
	if err != nil {
		if errors.Is(err, repositories.ErrConcurrencyConflict) {
			log.Printf("RECONCILE: reversal of withdrawal %d kept conflicting: %v", withdrawalID, err)
		}
		if errors.Is(err, repositories.ErrWithdrawalNotFound) {
			return ErrWithdrawalNotFound
		}
		return err
	}
	if reversed == nil {
		return nil
	}

	event := events.WithdrawalReversed{
		WithdrawalID: reversed.ID,
		AccountID:    reversed.AccountID,
		Amount:       reversed.Amount,
		OccurredAt:   time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, events.TopicWithdrawalReversed, event); err != nil {
		log.Printf("failed to publish reversal event %d: %v", reversed.ID, err)
	}
	return nil
}

// reverseOnce runs the reversal transaction. It returns the withdrawal only
// when this call performed the reversal, so replays publish nothing.
func (s *service) reverseOnce(withdrawalID uint) (*models.Withdrawal, error) {
	var reversed *models.Withdrawal

	err := s.store.ExecuteInTransaction(func(tx repositories.Store) error {
		withdrawal, err := tx.Withdrawals().GetByIDForUpdate(withdrawalID)
		if err != nil {
			return err
		}
		if withdrawal.Status == models.WithdrawalStatusReversed {
			return nil
		}
		if withdrawal.Status != models.WithdrawalStatusPending {
			return ErrNotPending
		}

		if err := tx.Withdrawals().UpdateStatus(withdrawalID,
			models.WithdrawalStatusPending, models.WithdrawalStatusReversed); err != nil {
			return err
		}
		if err := tx.Accounts().Credit(withdrawal.AccountID, withdrawal.Amount); err != nil {
			return err
		}
		if err := tx.Accounts().CreateEntry(&models.LedgerEntry{
			AccountID: withdrawal.AccountID,
			Type:      models.EntryTypeReversal,
			Amount:    withdrawal.Amount,
			Reference: fmt.Sprintf("withdrawal:%d", withdrawal.ID),
		}); err != nil {
			return err
		}

		reversed = withdrawal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reversed, nil
}

func (s *service) Get(ctx context.Context, withdrawalID uint) (*models.Withdrawal, error) {
	withdrawal, err := s.store.Withdrawals().GetByID(withdrawalID)
	if err != nil {
		if errors.Is(err, repositories.ErrWithdrawalNotFound) {
			return nil, ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("failed to get withdrawal: %w", err)
	}
	return withdrawal, nil
}
