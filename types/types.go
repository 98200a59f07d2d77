package types

import "golang.org/x/exp/constraints"

// Row holds the integers parsed from one input line, in line order.
type Row[T constraints.Integer] []T

// Metrics holds the two aggregate results computed over a list of pairs.
type Metrics[T constraints.Integer] struct {
	Distance T
	Score    T
}

// Counter reports how often a value occurs in a fixed column.
type Counter[T constraints.Integer] interface {
	// Count returns the number of occurrences of v.
	Count(v T) int

	// Len returns the length of the counted column
	Len() int
}

// CounterConfig provides configuration options for counters
type CounterConfig struct {
	// For the scanning counter
	CacheSize int
}

// CounterType represents the occurrence counting strategy
type CounterType string

const (
	CounterFrequency CounterType = "frequency"
	CounterScan      CounterType = "scan"
)

// RowPolicy decides what happens to rows with fewer than two elements.
type RowPolicy string

const (
	// RowStrict fails on the first short row.
	RowStrict RowPolicy = "strict"
	// RowSkipShort drops short rows, blank lines included.
	RowSkipShort RowPolicy = "skip"
)

// LengthPolicy decides how columns of unequal length are paired.
type LengthPolicy string

const (
	// LengthStrict fails when the columns differ in length.
	LengthStrict LengthPolicy = "strict"
	// LengthTruncate pairs up to the shorter column.
	LengthTruncate LengthPolicy = "truncate"
)
