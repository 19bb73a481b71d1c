package mood

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidMood = errors.New("unknown mood")
)
