package payment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"crease/internal/events"
	"crease/internal/models"
	"crease/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type service struct {
	store     repositories.Store
	gateway   Gateway
	publisher events.Publisher
	currency  string
}

// NewService creates a new payment intake service
func NewService(store repositories.Store, gateway Gateway, publisher events.Publisher, currency string) Service {
	if store == nil {
		panic("store is required")
	}
	if gateway == nil {
		panic("gateway is required")
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if currency == "" {
		currency = "usd"
	}
	return &service{
		store:     store,
		gateway:   gateway,
		publisher: publisher,
		currency:  currency,
	}
}

func (s *service) CreateOrder(ctx context.Context, accountID uint, amount decimal.Decimal) (*models.PaymentRecord, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if _, err := s.store.Accounts().GetByID(accountID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	gatewayRef, err := s.gateway.CreateOrder(ctx, amount, s.currency)
	if err != nil {
		return nil, err
	}

	record := &models.PaymentRecord{
		AccountID:  accountID,
		OrderRef:   "ORD-" + uuid.NewString(),
		GatewayRef: gatewayRef,
		Amount:     amount,
		Status:     models.PaymentStatusCreated,
	}
	if err := s.store.Payments().Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *service) ConfirmPayment(ctx context.Context, orderRef, externalPaymentRef string) error {
	var confirmed *models.PaymentRecord

	err := s.store.ExecuteInTransaction(func(tx repositories.Store) error {
		// The row lock serializes concurrent deliveries of the same
		// confirmation; the loser of the race observes status completed.
		record, err := tx.Payments().GetByOrderRefForUpdate(orderRef)
		if err != nil {
			return err
		}

		if record.Status == models.PaymentStatusCompleted {
			return nil
		}
		if record.Status != models.PaymentStatusCreated {
			return ErrOrderNotOpen
		}

		if err := tx.Payments().MarkCompleted(record.ID, externalPaymentRef); err != nil {
			return err
		}
		if err := tx.Accounts().Credit(record.AccountID, record.Amount); err != nil {
			return err
		}
		if err := tx.Accounts().CreateEntry(&models.LedgerEntry{
			AccountID: record.AccountID,
			Type:      models.EntryTypeDeposit,
			Amount:    record.Amount,
			Reference: record.OrderRef,
			Metadata: models.NewJSON(map[string]interface{}{
				"external_payment_ref": externalPaymentRef,
			}),
		}); err != nil {
			return err
		}

		confirmed = record
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if confirmed != nil {
		event := events.PaymentCompleted{
			AccountID:          confirmed.AccountID,
			OrderRef:           confirmed.OrderRef,
			ExternalPaymentRef: externalPaymentRef,
			Amount:             confirmed.Amount,
			OccurredAt:         time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, events.TopicPaymentCompleted, event); err != nil {
			log.Printf("failed to publish payment event for %s: %v", confirmed.OrderRef, err)
		}
	}
	return nil
}

func (s *service) FailOrder(ctx context.Context, orderRef string) error {
	err := s.store.ExecuteInTransaction(func(tx repositories.Store) error {
		record, err := tx.Payments().GetByOrderRefForUpdate(orderRef)
		if err != nil {
			return err
		}
		if record.Status == models.PaymentStatusFailed {
			return nil
		}
		if record.Status != models.PaymentStatusCreated {
			return ErrOrderNotOpen
		}
		return tx.Payments().MarkFailed(record.ID)
	})
	if errors.Is(err, repositories.ErrOrderNotFound) {
		return ErrOrderNotFound
	}
	return err
}

func (s *service) GetOrder(ctx context.Context, orderRef string) (*models.PaymentRecord, error) {
	record, err := s.store.Payments().GetByOrderRef(orderRef)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return record, nil
}
