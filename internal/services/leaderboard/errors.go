package leaderboard

import "errors"

// Service errors
var (
	ErrContestNotFound = errors.New("contest not found")
)
