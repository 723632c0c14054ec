package withdrawal

import "errors"

// Service errors
var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrBelowMinimum       = errors.New("amount below minimum withdrawal")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrAccountNotFound    = errors.New("account not found")
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	ErrNotPending         = errors.New("withdrawal is not pending")
)
