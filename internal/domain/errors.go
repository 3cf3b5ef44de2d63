package domain

import "errors"

var (
	// Ledger errors
	ErrAccountFrozen        = errors.New("account is frozen")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInsufficientFunds    = errors.New("insufficient available funds")
	ErrDuplicateTransaction = errors.New("transaction id already used")
	ErrIneligibleReference  = errors.New("referenced transaction unknown or not eligible")
	ErrUnsupportedKind      = errors.New("unsupported transaction kind")
)
