package ledger

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrUnauthorized  = errors.New("record belongs to a different user")
	ErrAccountInUse  = errors.New("account has existing transactions")
	ErrInvalidAmount = errors.New("amount must not be negative")
)
