package leaderboard

import "time"

// Entry is one ranked row of a contest leaderboard. Ranks are derived on
// each recomputation, never persisted back onto teams.
type Entry struct {
	Rank        int       `json:"rank"`
	TeamID      string    `json:"team_id"`
	AccountID   uint      `json:"account_id"`
	TotalPoints int       `json:"total_points"`
	JoinedAt    time.Time `json:"joined_at"`
}
