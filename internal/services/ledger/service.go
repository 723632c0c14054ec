package ledger

import (
	"context"
	"errors"
	"fmt"

	"crease/internal/models"
	"crease/internal/repositories"

	"github.com/shopspring/decimal"
)

type service struct {
	store   repositories.Store
	metrics MetricsCollector
}

// NewService creates a new ledger service
func NewService(store repositories.Store, metrics MetricsCollector) Service {
	if store == nil {
		panic("store is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &service{store: store, metrics: metrics}
}

func (s *service) Credit(ctx context.Context, accountID uint, amount decimal.Decimal, entryType, reference string) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	err := s.store.ExecuteInTransaction(func(tx repositories.Store) error {
		if err := tx.Accounts().Credit(accountID, amount); err != nil {
			return err
		}
		return tx.Accounts().CreateEntry(&models.LedgerEntry{
			AccountID: accountID,
			Type:      entryType,
			Amount:    amount,
			Reference: reference,
		})
	})
	if err != nil {
		s.metrics.RecordError("credit", err.Error())
		return s.mapError(err)
	}

	s.metrics.RecordMutation(entryType, amount.InexactFloat64())
	return nil
}

func (s *service) Debit(ctx context.Context, accountID uint, amount decimal.Decimal, entryType, reference string) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	err := s.store.ExecuteInTransaction(func(tx repositories.Store) error {
		if err := tx.Accounts().Debit(accountID, amount); err != nil {
			return err
		}
		return tx.Accounts().CreateEntry(&models.LedgerEntry{
			AccountID: accountID,
			Type:      entryType,
			Amount:    amount.Neg(),
			Reference: reference,
		})
	})
	if err != nil {
		if !errors.Is(err, repositories.ErrInsufficientFunds) {
			s.metrics.RecordError("debit", err.Error())
		}
		return s.mapError(err)
	}

	s.metrics.RecordMutation(entryType, amount.Neg().InexactFloat64())
	return nil
}

func (s *service) CreditWinnings(ctx context.Context, accountID uint, amount decimal.Decimal, reference string) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	err := s.store.ExecuteInTransaction(func(tx repositories.Store) error {
		if err := tx.Accounts().AddWinnings(accountID, amount); err != nil {
			return err
		}
		return tx.Accounts().CreateEntry(&models.LedgerEntry{
			AccountID: accountID,
			Type:      models.EntryTypeWinnings,
			Amount:    amount,
			Reference: reference,
		})
	})
	if err != nil {
		s.metrics.RecordError("credit_winnings", err.Error())
		return s.mapError(err)
	}

	s.metrics.RecordMutation(models.EntryTypeWinnings, amount.InexactFloat64())
	return nil
}

func (s *service) GetAccount(ctx context.Context, accountID uint) (*models.Account, error) {
	account, err := s.store.Accounts().GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (s *service) GetBalance(ctx context.Context, accountID uint) (decimal.Decimal, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

func (s *service) GetEntries(ctx context.Context, accountID uint, limit, offset int) ([]models.LedgerEntry, error) {
	entries, err := s.store.Accounts().ListEntries(accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}
	return entries, nil
}

func (s *service) mapError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrInsufficientFunds):
		return ErrInsufficientFunds
	case errors.Is(err, repositories.ErrAccountNotFound):
		return ErrAccountNotFound
	default:
		return err
	}
}
