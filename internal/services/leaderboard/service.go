package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"crease/internal/repositories"
	"crease/internal/repositories/cache"
)

// DefaultCacheTTL keeps rankings hot briefly; the projection is recomputed
// on the next miss, so staleness is bounded by this window.
const DefaultCacheTTL = 30 * time.Second

type service struct {
	contests repositories.ContestRepository
	teams    repositories.TeamRepository
	cache    *cache.CacheService
	ttl      time.Duration
}

// NewService creates a new leaderboard projection service. The cache is
// optional; without it every call recomputes from storage.
func NewService(contests repositories.ContestRepository, teams repositories.TeamRepository, cacheService *cache.CacheService, ttl time.Duration) Service {
	if contests == nil {
		panic("contests repo is required")
	}
	if teams == nil {
		panic("teams repo is required")
	}
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	return &service{
		contests: contests,
		teams:    teams,
		cache:    cacheService,
		ttl:      ttl,
	}
}

func (s *service) Rank(ctx context.Context, contestID uint) ([]Entry, error) {
	var key string
	if s.cache != nil {
		key = s.cache.GenerateKey("leaderboard", "contest", contestID)
		var cached []Entry
		if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
			return cached, nil
		}
	}

	if _, err := s.contests.GetByID(contestID); err != nil {
		if errors.Is(err, repositories.ErrContestNotFound) {
			return nil, ErrContestNotFound
		}
		return nil, fmt.Errorf("failed to get contest: %w", err)
	}

	teams, err := s.teams.ListByContest(contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to rank contest %d: %w", contestID, err)
	}

	// Teams arrive ordered by points desc, creation asc; ranks follow the
	// sequence so repeated calls over the same data are identical.
	entries := make([]Entry, len(teams))
	for i, team := range teams {
		entries[i] = Entry{
			Rank:        i + 1,
			TeamID:      team.ID,
			AccountID:   team.AccountID,
			TotalPoints: team.TotalPoints,
			JoinedAt:    team.CreatedAt,
		}
	}

	if s.cache != nil {
		if err := s.cache.SetWithTTL(ctx, key, entries, s.ttl); err != nil {
			log.Printf("failed to cache leaderboard for contest %d: %v", contestID, err)
		}
	}
	return entries, nil
}
