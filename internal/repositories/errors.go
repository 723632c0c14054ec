package repositories

import "errors"

// Repository errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrContestNotFound    = errors.New("contest not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrWithdrawalNotFound = errors.New("withdrawal not found")

	// ErrInsufficientFunds is returned by the conditional debit when the
	// balance guard rejects the update.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Contest capacity errors, produced by the guarded slot increment.
	ErrContestFull   = errors.New("contest full")
	ErrContestClosed = errors.New("contest closed")

	// ErrConcurrencyConflict marks a serialization failure or deadlock;
	// callers retry the whole transaction.
	ErrConcurrencyConflict = errors.New("concurrency conflict")
)
