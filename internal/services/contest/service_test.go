package contest

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

func newTestContest(t *testing.T, svc Service, maxTeams int) uint {
	t.Helper()
	contest := &models.Contest{
		Name:     "Grand League",
		MatchRef: "match-1",
		EntryFee: decimal.NewFromInt(49),
		MaxTeams: maxTeams,
	}
	require.NoError(t, svc.Register(context.Background(), contest))
	return contest.ID
}

func TestContestService_Register(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore().Contests())

	t.Run("registers active contest with empty counter", func(t *testing.T) {
		contestID := newTestContest(t, svc, 100)

		contest, err := svc.Get(ctx, contestID)
		require.NoError(t, err)
		assert.True(t, contest.Active)
		assert.Equal(t, 0, contest.JoinedTeams)
		assert.Equal(t, 100, contest.MaxTeams)
	})

	t.Run("rejects invalid capacity", func(t *testing.T) {
		err := svc.Register(ctx, &models.Contest{
			EntryFee: decimal.NewFromInt(49),
			MaxTeams: 0,
		})
		assert.ErrorIs(t, err, ErrInvalidContest)
	})

	t.Run("rejects non-positive entry fee", func(t *testing.T) {
		err := svc.Register(ctx, &models.Contest{
			EntryFee: decimal.Zero,
			MaxTeams: 10,
		})
		assert.ErrorIs(t, err, ErrInvalidContest)
	})
}

func TestContestService_ReserveSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("reserve and release move the counter", func(t *testing.T) {
		svc := NewService(memory.NewStore().Contests())
		contestID := newTestContest(t, svc, 2)

		require.NoError(t, svc.ReserveSlot(ctx, contestID))
		require.NoError(t, svc.ReserveSlot(ctx, contestID))

		contest, err := svc.Get(ctx, contestID)
		require.NoError(t, err)
		assert.Equal(t, 2, contest.JoinedTeams)

		require.NoError(t, svc.ReleaseSlot(ctx, contestID))
		contest, err = svc.Get(ctx, contestID)
		require.NoError(t, err)
		assert.Equal(t, 1, contest.JoinedTeams)
	})

	t.Run("full contest rejects reservation", func(t *testing.T) {
		svc := NewService(memory.NewStore().Contests())
		contestID := newTestContest(t, svc, 1)

		require.NoError(t, svc.ReserveSlot(ctx, contestID))
		assert.ErrorIs(t, svc.ReserveSlot(ctx, contestID), ErrContestFull)

		contest, err := svc.Get(ctx, contestID)
		require.NoError(t, err)
		assert.Equal(t, contest.MaxTeams, contest.JoinedTeams)
	})

	t.Run("closed contest rejects reservation", func(t *testing.T) {
		svc := NewService(memory.NewStore().Contests())
		contestID := newTestContest(t, svc, 10)

		require.NoError(t, svc.Close(ctx, contestID))
		assert.ErrorIs(t, svc.ReserveSlot(ctx, contestID), ErrContestClosed)
	})

	t.Run("unknown contest", func(t *testing.T) {
		svc := NewService(memory.NewStore().Contests())
		assert.ErrorIs(t, svc.ReserveSlot(ctx, 999), ErrContestNotFound)
	})
}

// Racing reservations against the last slot: exactly one caller wins, the
// rest get ErrContestFull, and joined_teams never exceeds max_teams.
func TestContestService_LastSlotRace(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore().Contests())
	contestID := newTestContest(t, svc, 5)

	for i := 0; i < 4; i++ {
		require.NoError(t, svc.ReserveSlot(ctx, contestID))
	}

	const contenders = 10
	var wg sync.WaitGroup
	results := make(chan error, contenders)

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- svc.ReserveSlot(ctx, contestID)
		}()
	}
	wg.Wait()
	close(results)

	won, full := 0, 0
	for err := range results {
		switch {
		case err == nil:
			won++
		case assert.ErrorIs(t, err, ErrContestFull):
			full++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, contenders-1, full)

	contest, err := svc.Get(ctx, contestID)
	require.NoError(t, err)
	assert.Equal(t, 5, contest.JoinedTeams)
}
