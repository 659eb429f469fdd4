package distribution

import "errors"

// Sentinel kinds for distribution errors.
var (
	ErrUnknownDimension = errors.New("unknown distribution dimension")
)
