package contest

import "errors"

// Service errors
var (
	ErrContestNotFound = errors.New("contest not found")
	ErrContestFull     = errors.New("contest full")
	ErrContestClosed   = errors.New("contest closed")
	ErrInvalidContest  = errors.New("invalid contest")
)
