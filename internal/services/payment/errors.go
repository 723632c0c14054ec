package payment

import "errors"

// Service errors
var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderNotOpen    = errors.New("order is not open")
	ErrAccountNotFound = errors.New("account not found")
	ErrGatewayFailure  = errors.New("payment gateway failure")
)
