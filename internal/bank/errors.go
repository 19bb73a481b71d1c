package bank

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrDisconnected = errors.New("connection is disconnected")
)
