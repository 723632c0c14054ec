package ledger

import (
	"context"
	"sync"
	"testing"

	"crease/internal/models"
	"crease/internal/repositories/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, balance int64) (Service, uint) {
	t.Helper()
	store := memory.NewStore()
	account := &models.Account{Balance: decimal.NewFromInt(balance)}
	require.NoError(t, store.Accounts().Create(account))
	return NewService(store, nil), account.ID
}

func TestLedgerService_Credit(t *testing.T) {
	ctx := context.Background()

	t.Run("successful credit", func(t *testing.T) {
		svc, accountID := newTestService(t, 0)

		err := svc.Credit(ctx, accountID, decimal.NewFromInt(500), models.EntryTypeDeposit, "ORD-1")
		require.NoError(t, err)

		balance, err := svc.GetBalance(ctx, accountID)
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromInt(500)))
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		svc, accountID := newTestService(t, 100)

		assert.ErrorIs(t, svc.Credit(ctx, accountID, decimal.Zero, models.EntryTypeDeposit, ""), ErrInvalidAmount)
		assert.ErrorIs(t, svc.Credit(ctx, accountID, decimal.NewFromInt(-5), models.EntryTypeDeposit, ""), ErrInvalidAmount)

		balance, err := svc.GetBalance(ctx, accountID)
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromInt(100)))
	})

	t.Run("unknown account", func(t *testing.T) {
		svc, _ := newTestService(t, 0)
		err := svc.Credit(ctx, 999, decimal.NewFromInt(10), models.EntryTypeDeposit, "")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestLedgerService_Debit(t *testing.T) {
	ctx := context.Background()

	t.Run("successful debit", func(t *testing.T) {
		svc, accountID := newTestService(t, 100)

		err := svc.Debit(ctx, accountID, decimal.NewFromInt(40), models.EntryTypeEntryFee, "team-1")
		require.NoError(t, err)

		balance, err := svc.GetBalance(ctx, accountID)
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromInt(60)))
	})

	t.Run("insufficient funds leaves balance untouched", func(t *testing.T) {
		svc, accountID := newTestService(t, 50)

		err := svc.Debit(ctx, accountID, decimal.NewFromInt(100), models.EntryTypeEntryFee, "team-1")
		assert.ErrorIs(t, err, ErrInsufficientFunds)

		balance, err := svc.GetBalance(ctx, accountID)
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromInt(50)))
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		svc, accountID := newTestService(t, 100)
		assert.ErrorIs(t, svc.Debit(ctx, accountID, decimal.Zero, models.EntryTypeEntryFee, ""), ErrInvalidAmount)
	})
}

// Concurrent mutations on one account must serialize: the final balance is
// the sum of whatever operations succeeded, and it never goes negative.
func TestLedgerService_ConcurrentMutationsSerialize(t *testing.T) {
	ctx := context.Background()
	svc, accountID := newTestService(t, 1000)

	const workers = 20
	var wg sync.WaitGroup
	debited := make(chan bool, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := svc.Debit(ctx, accountID, decimal.NewFromInt(100), models.EntryTypeEntryFee, "race")
			debited <- err == nil
		}()
	}
	wg.Wait()
	close(debited)

	succeeded := 0
	for ok := range debited {
		if ok {
			succeeded++
		}
	}
	// 1000 covers exactly ten 100-unit debits.
	assert.Equal(t, 10, succeeded)

	balance, err := svc.GetBalance(ctx, accountID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.Zero), "final balance %s", balance)
	assert.False(t, balance.IsNegative())
}

func TestLedgerService_CreditWinnings(t *testing.T) {
	ctx := context.Background()
	svc, accountID := newTestService(t, 0)

	require.NoError(t, svc.CreditWinnings(ctx, accountID, decimal.NewFromInt(2000), "contest-7"))

	account, err := svc.GetAccount(ctx, accountID)
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(2000)))
	assert.True(t, account.TotalWinnings.Equal(decimal.NewFromInt(2000)))
}

func TestLedgerService_EntriesRecorded(t *testing.T) {
	ctx := context.Background()
	svc, accountID := newTestService(t, 100)

	require.NoError(t, svc.Credit(ctx, accountID, decimal.NewFromInt(200), models.EntryTypeDeposit, "ORD-9"))
	require.NoError(t, svc.Debit(ctx, accountID, decimal.NewFromInt(50), models.EntryTypeEntryFee, "team-3"))

	entries, err := svc.GetEntries(ctx, accountID, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Most recent first.
	assert.Equal(t, models.EntryTypeEntryFee, entries[0].Type)
	assert.True(t, entries[0].Amount.Equal(decimal.NewFromInt(-50)))
	assert.Equal(t, models.EntryTypeDeposit, entries[1].Type)
	assert.True(t, entries[1].Amount.Equal(decimal.NewFromInt(200)))
}
