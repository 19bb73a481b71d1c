package gamify

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrChallengeNotActive = errors.New("challenge is not active")
	ErrInvalidProgress    = errors.New("lesson progress must be between 0 and 100")
)
