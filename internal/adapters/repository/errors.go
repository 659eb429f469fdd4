package repository

import "errors"

// Sentinel kinds for panel store errors.
var (
	ErrNotFound      = errors.New("panel not found")
	ErrInvalidRecord = errors.New("invalid panel record")
)
