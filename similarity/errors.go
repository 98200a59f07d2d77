package similarity

import "errors"

// Common column errors
var (
	// ErrRowTooShort indicates a row has fewer than two elements
	ErrRowTooShort = errors.New("row has fewer than two elements")

	// ErrLengthMismatch indicates the columns differ in length
	ErrLengthMismatch = errors.New("columns differ in length")

	// ErrUnknownPolicy indicates a row or length policy is not recognized
	ErrUnknownPolicy = errors.New("unknown policy")
)
