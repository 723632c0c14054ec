package leaderboard

import "context"

// Service derives rank ordering over a contest's teams from stored point
// totals. Read-only: recomputation has no side effects on team records.
type Service interface {
	// Rank returns the contest's teams ordered by total points descending,
	// ties broken by earliest team creation, ranks assigned 1..N.
	Rank(ctx context.Context, contestID uint) ([]Entry, error)
}
