package receipt

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrTooLarge     = errors.New("receipt file too large")
)
