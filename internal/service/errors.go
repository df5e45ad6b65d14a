package service

import "errors"

// Sentinel errors the handlers map to response codes. Anything a service
// returns that wraps none of these is treated as a store failure (500).
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
