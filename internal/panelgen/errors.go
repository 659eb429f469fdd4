package panelgen

import "errors"

// Sentinel kinds for submission errors.
var (
	ErrBackpressure = errors.New("service refused batch: queue full")
	ErrRejected     = errors.New("service rejected request")
	ErrUnhealthy    = errors.New("service unhealthy")
)
