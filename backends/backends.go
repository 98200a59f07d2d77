package backends

import (
	"errors"

	"github.com/botirk38/aoc2024/backends/inmemory"
	"github.com/botirk38/aoc2024/types"
	"golang.org/x/exp/constraints"
)

var ErrUnsupportedCounter = errors.New("unsupported counter type")

// CounterFactory creates occurrence counters based on type and configuration
type CounterFactory[T constraints.Integer] struct{}

// NewCounter creates a new counter of the specified type over column
func (f *CounterFactory[T]) NewCounter(counterType types.CounterType, column []T, config types.CounterConfig) (types.Counter[T], error) {
	switch counterType {
	case types.CounterFrequency:
		return NewFrequencyCounter(column), nil
	case types.CounterScan:
		return NewScanCounter(column, config)
	default:
		return nil, ErrUnsupportedCounter
	}
}

// NewFrequencyCounter creates a new frequency map counter
func NewFrequencyCounter[T constraints.Integer](column []T) types.Counter[T] {
	return inmemory.NewFrequencyCounter(column)
}

// NewScanCounter creates a new memoized scanning counter
func NewScanCounter[T constraints.Integer](column []T, config types.CounterConfig) (types.Counter[T], error) {
	counter, err := inmemory.NewScanCounter(column, config)
	if err != nil {
		return nil, err
	}
	return counter, nil
}
