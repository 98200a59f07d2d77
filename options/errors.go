package options

import "errors"

// Common configuration errors
var (
	// ErrInvalidCacheSize indicates the scan cache size is not positive
	ErrInvalidCacheSize = errors.New("scan cache size must be positive")

	// ErrNilCounterBuilder indicates a custom counter builder is nil
	ErrNilCounterBuilder = errors.New("counter builder cannot be nil")
)
