package payment

import (
	"context"
	"sync"
	"testing"

	"crease/internal/models"
	"crease/internal/repositories"
	"crease/internal/repositories/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateOrder(ctx context.Context, amount decimal.Decimal, currency string) (string, error) {
	args := m.Called(ctx, amount, currency)
	return args.String(0), args.Error(1)
}

func newTestAccount(t *testing.T, store repositories.Store) uint {
	t.Helper()
	account := &models.Account{Balance: decimal.Zero}
	require.NoError(t, store.Accounts().Create(account))
	return account.ID
}

func TestPaymentService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("creates open order without touching the balance", func(t *testing.T) {
		store := memory.NewStore()
		accountID := newTestAccount(t, store)
		gateway := new(MockGateway)
		gateway.On("CreateOrder", ctx, decimal.NewFromInt(500), "inr").Return("pi_123", nil)

		svc := NewService(store, gateway, nil, "inr")

		record, err := svc.CreateOrder(ctx, accountID, decimal.NewFromInt(500))
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusCreated, record.Status)
		assert.Equal(t, "pi_123", record.GatewayRef)
		assert.NotEmpty(t, record.OrderRef)

		account, err := store.Accounts().GetByID(accountID)
		require.NoError(t, err)
		assert.True(t, account.Balance.IsZero())
		gateway.AssertExpectations(t)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		store := memory.NewStore()
		accountID := newTestAccount(t, store)
		svc := NewService(store, new(MockGateway), nil, "inr")

		_, err := svc.CreateOrder(ctx, accountID, decimal.Zero)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("unknown account", func(t *testing.T) {
		svc := NewService(memory.NewStore(), new(MockGateway), nil, "inr")
		_, err := svc.CreateOrder(ctx, 999, decimal.NewFromInt(100))
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func createOpenOrder(t *testing.T, store repositories.Store, svc Service, accountID uint, amount int64) *models.PaymentRecord {
	t.Helper()
	record, err := svc.CreateOrder(context.Background(), accountID, decimal.NewFromInt(amount))
	require.NoError(t, err)
	return record
}

func TestPaymentService_ConfirmPayment(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (Service, repositories.Store, uint, *models.PaymentRecord) {
		store := memory.NewStore()
		accountID := newTestAccount(t, store)
		gateway := new(MockGateway)
		gateway.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything).Return("pi_123", nil)
		svc := NewService(store, gateway, nil, "inr")
		record := createOpenOrder(t, store, svc, accountID, 500)
		return svc, store, accountID, record
	}

	t.Run("credits the account once", func(t *testing.T) {
		svc, store, accountID, record := setup(t)

		require.NoError(t, svc.ConfirmPayment(ctx, record.OrderRef, "pay_abc"))

		account, err := store.Accounts().GetByID(accountID)
		require.NoError(t, err)
		assert.True(t, account.Balance.Equal(decimal.NewFromInt(500)))

		got, err := svc.GetOrder(ctx, record.OrderRef)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusCompleted, got.Status)
		require.NotNil(t, got.ExternalPaymentRef)
		assert.Equal(t, "pay_abc", *got.ExternalPaymentRef)

		entries, err := store.Accounts().ListEntries(accountID, 10, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, models.EntryTypeDeposit, entries[0].Type)
	})

	t.Run("replayed confirmation is a no-op", func(t *testing.T) {
		svc, store, accountID, record := setup(t)

		require.NoError(t, svc.ConfirmPayment(ctx, record.OrderRef, "pay_abc"))
		require.NoError(t, svc.ConfirmPayment(ctx, record.OrderRef, "pay_abc"))

		account, err := store.Accounts().GetByID(accountID)
		require.NoError(t, err)
		assert.True(t, account.Balance.Equal(decimal.NewFromInt(500)), "replay must not credit twice")

		entries, err := store.Accounts().ListEntries(accountID, 10, 0)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("concurrent duplicate deliveries credit exactly once", func(t *testing.T) {
		svc, store, accountID, record := setup(t)

		const deliveries = 10
		var wg sync.WaitGroup
		for i := 0; i < deliveries; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, svc.ConfirmPayment(ctx, record.OrderRef, "pay_abc"))
			}()
		}
		wg.Wait()

		account, err := store.Accounts().GetByID(accountID)
		require.NoError(t, err)
		assert.True(t, account.Balance.Equal(decimal.NewFromInt(500)))

		entries, err := store.Accounts().ListEntries(accountID, 100, 0)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("unknown order", func(t *testing.T) {
		svc, _, _, _ := setup(t)
		assert.ErrorIs(t, svc.ConfirmPayment(ctx, "ORD-missing", "pay_x"), ErrOrderNotFound)
	})

	t.Run("failed order cannot be confirmed", func(t *testing.T) {
		svc, store, accountID, record := setup(t)

		require.NoError(t, svc.FailOrder(ctx, record.OrderRef))
		assert.ErrorIs(t, svc.ConfirmPayment(ctx, record.OrderRef, "pay_abc"), ErrOrderNotOpen)

		account, err := store.Accounts().GetByID(accountID)
		require.NoError(t, err)
		assert.True(t, account.Balance.IsZero())
	})
}

func TestPaymentService_FailOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	accountID := newTestAccount(t, store)
	gateway := new(MockGateway)
	gateway.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything).Return("pi_123", nil)
	svc := NewService(store, gateway, nil, "inr")
	record := createOpenOrder(t, store, svc, accountID, 200)

	require.NoError(t, svc.FailOrder(ctx, record.OrderRef))
	// Marking failed twice is harmless.
	require.NoError(t, svc.FailOrder(ctx, record.OrderRef))

	got, err := svc.GetOrder(ctx, record.OrderRef)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, got.Status)
}
