package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrBackpressure = errors.New("ingestion queue full")
	ErrStopped      = errors.New("service not started")
)
