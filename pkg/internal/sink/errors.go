package sink

import "errors"

var (
	// ErrInsufficientSpace reports a volume that cannot hold the payload plus the configured margin.
	ErrInsufficientSpace = errors.New("insufficient free space for output")
	// ErrInvalidConfig reports a sink that is missing required settings.
	ErrInvalidConfig = errors.New("invalid sink configuration")
)
