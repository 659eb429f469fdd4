package panelfile

import "errors"

// Sentinel kinds for panel file errors.
var (
	ErrDecode        = errors.New("decode panel file")
	ErrEncode        = errors.New("encode panel file")
	ErrUnknownFormat = errors.New("unknown panel file format")
)
