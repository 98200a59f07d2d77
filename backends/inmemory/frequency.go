package inmemory

import "golang.org/x/exp/constraints"

// FrequencyCounter counts occurrences from a value -> frequency map built once
// over the column.
type FrequencyCounter[T constraints.Integer] struct {
	frequencies map[T]int
	length      int
}

// NewFrequencyCounter creates a new frequency counter over column
func NewFrequencyCounter[T constraints.Integer](column []T) *FrequencyCounter[T] {
	frequencies := make(map[T]int, len(column))
	for _, v := range column {
		frequencies[v]++
	}

	return &FrequencyCounter[T]{
		frequencies: frequencies,
		length:      len(column),
	}
}

// Count returns the number of occurrences of v in the column
func (c *FrequencyCounter[T]) Count(v T) int {
	return c.frequencies[v]
}

// Len returns the length of the column
func (c *FrequencyCounter[T]) Len() int {
	return c.length
}
