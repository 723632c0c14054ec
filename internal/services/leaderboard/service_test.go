package leaderboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"crease/internal/models"
	"crease/internal/repositories/memory"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedContest(t *testing.T, store *memory.Store) uint {
	t.Helper()
	contest := &models.Contest{
		Name:     "Mega Contest",
		MatchRef: "match-1",
		EntryFee: decimal.NewFromInt(49),
		MaxTeams: 100,
		Active:   true,
	}
	require.NoError(t, store.Contests().Create(contest))
	return contest.ID
}

func seedTeam(t *testing.T, store *memory.Store, contestID uint, accountID uint, points int) string {
	t.Helper()
	team := &models.Team{
		ID:        uuid.NewString(),
		AccountID: accountID,
		ContestID: contestID,
	}
	require.NoError(t, store.Teams().Create(team))
	require.NoError(t, store.Teams().UpdateTotalPoints(team.ID, points))
	return team.ID
}

func TestLeaderboardService_Rank(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by points descending", func(t *testing.T) {
		store := memory.NewStore()
		contestID := seedContest(t, store)
		low := seedTeam(t, store, contestID, 1, 40)
		high := seedTeam(t, store, contestID, 2, 90)
		mid := seedTeam(t, store, contestID, 3, 70)

		svc := NewService(store.Contests(), store.Teams(), nil, time.Second)

		entries, err := svc.Rank(ctx, contestID)
		require.NoError(t, err)
		require.Len(t, entries, 3)

		assert.Equal(t, []string{high, mid, low}, []string{entries[0].TeamID, entries[1].TeamID, entries[2].TeamID})
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, 2, entries[1].Rank)
		assert.Equal(t, 3, entries[2].Rank)
	})

	t.Run("ties break toward the earlier join", func(t *testing.T) {
		store := memory.NewStore()
		contestID := seedContest(t, store)
		earlier := seedTeam(t, store, contestID, 1, 80)
		later := seedTeam(t, store, contestID, 2, 80)

		svc := NewService(store.Contests(), store.Teams(), nil, time.Second)

		entries, err := svc.Rank(ctx, contestID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, earlier, entries[0].TeamID)
		assert.Equal(t, later, entries[1].TeamID)
	})

	t.Run("repeated calls over unchanged data are identical", func(t *testing.T) {
		store := memory.NewStore()
		contestID := seedContest(t, store)
		for i := 0; i < 5; i++ {
			seedTeam(t, store, contestID, uint(i+1), 100-i*10)
		}

		svc := NewService(store.Contests(), store.Teams(), nil, time.Second)

		first, err := svc.Rank(ctx, contestID)
		require.NoError(t, err)
		second, err := svc.Rank(ctx, contestID)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("empty contest yields empty board", func(t *testing.T) {
		store := memory.NewStore()
		contestID := seedContest(t, store)
		svc := NewService(store.Contests(), store.Teams(), nil, time.Second)

		entries, err := svc.Rank(ctx, contestID)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("unknown contest", func(t *testing.T) {
		store := memory.NewStore()
		svc := NewService(store.Contests(), store.Teams(), nil, time.Second)

		_, err := svc.Rank(ctx, 999)
		assert.ErrorIs(t, err, ErrContestNotFound)
	})

	t.Run("dense ranking over a larger field", func(t *testing.T) {
		store := memory.NewStore()
		contestID := seedContest(t, store)
		for i := 0; i < 20; i++ {
			seedTeam(t, store, contestID, uint(i+1), (i*7)%50)
		}

		svc := NewService(store.Contests(), store.Teams(), nil, time.Second)

		entries, err := svc.Rank(ctx, contestID)
		require.NoError(t, err)
		require.Len(t, entries, 20)
		for i, entry := range entries {
			assert.Equal(t, i+1, entry.Rank, fmt.Sprintf("entry %d", i))
			if i > 0 {
				assert.GreaterOrEqual(t, entries[i-1].TotalPoints, entry.TotalPoints)
			}
		}
	})
}
