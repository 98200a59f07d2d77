package reader

import "errors"

// Common reader errors
var (
	// ErrResourceUnavailable indicates the input could not be opened
	ErrResourceUnavailable = errors.New("input unavailable")

	// ErrReadFailed indicates reading failed after the input was opened
	ErrReadFailed = errors.New("read failed")
)
