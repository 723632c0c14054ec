package join

import "errors"

// Service errors
var (
	ErrContestNotFound   = errors.New("contest not found")
	ErrContestFull       = errors.New("contest full")
	ErrContestClosed     = errors.New("contest closed")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyJoined     = errors.New("account already joined this contest")
	ErrAccountNotFound   = errors.New("account not found")
)
