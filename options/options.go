// Package options provides functional options for configuring Calculator instances.
package options

import (
	"fmt"

	"github.com/botirk38/aoc2024/backends"
	"github.com/botirk38/aoc2024/similarity"
	"github.com/botirk38/aoc2024/types"
	"golang.org/x/exp/constraints"
)

// DefaultScanCacheSize is the number of memoized lookups kept by the scanning counter
const DefaultScanCacheSize = 1024

// CounterBuilder builds an occurrence counter over the right column
type CounterBuilder[T constraints.Integer] func(right []T) (types.Counter[T], error)

// Option represents a configuration option for Calculator
type Option[T constraints.Integer] func(*Config[T]) error

// Config holds the configuration for building a Calculator
type Config[T constraints.Integer] struct {
	Counter       types.CounterType
	ScanCacheSize int
	RowPolicy     types.RowPolicy
	LengthPolicy  types.LengthPolicy

	// NewCounter overrides Counter when set
	NewCounter CounterBuilder[T]
}

// NewConfig creates a new configuration with default values
func NewConfig[T constraints.Integer]() *Config[T] {
	return &Config[T]{
		Counter:       types.CounterFrequency,
		ScanCacheSize: DefaultScanCacheSize,
		RowPolicy:     types.RowStrict,
		LengthPolicy:  types.LengthStrict,
	}
}

// Apply applies all the given options to the config
func (c *Config[T]) Apply(opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config[T]) Validate() error {
	if c.NewCounter == nil {
		switch c.Counter {
		case types.CounterFrequency, types.CounterScan:
		default:
			return fmt.Errorf("%w: %q", backends.ErrUnsupportedCounter, c.Counter)
		}
	}
	if c.ScanCacheSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCacheSize, c.ScanCacheSize)
	}
	if c.RowPolicy != types.RowStrict && c.RowPolicy != types.RowSkipShort {
		return fmt.Errorf("%w: row policy %q", similarity.ErrUnknownPolicy, c.RowPolicy)
	}
	if c.LengthPolicy != types.LengthStrict && c.LengthPolicy != types.LengthTruncate {
		return fmt.Errorf("%w: length policy %q", similarity.ErrUnknownPolicy, c.LengthPolicy)
	}
	return nil
}

// CounterBuilder returns the builder selected by the config
func (c *Config[T]) CounterBuilder() CounterBuilder[T] {
	if c.NewCounter != nil {
		return c.NewCounter
	}

	factory := &backends.CounterFactory[T]{}
	counterType := c.Counter
	config := types.CounterConfig{CacheSize: c.ScanCacheSize}
	return func(right []T) (types.Counter[T], error) {
		return factory.NewCounter(counterType, right, config)
	}
}

// WithFrequencyCounter counts occurrences with a frequency map
func WithFrequencyCounter[T constraints.Integer]() Option[T] {
	return func(cfg *Config[T]) error {
		cfg.Counter = types.CounterFrequency
		return nil
	}
}

// WithScanCounter counts occurrences by scanning, memoizing up to cacheSize lookups
func WithScanCounter[T constraints.Integer](cacheSize int) Option[T] {
	return func(cfg *Config[T]) error {
		if cacheSize <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidCacheSize, cacheSize)
		}
		cfg.Counter = types.CounterScan
		cfg.ScanCacheSize = cacheSize
		return nil
	}
}

// WithCounterType selects a counter by type name
func WithCounterType[T constraints.Integer](counterType types.CounterType) Option[T] {
	return func(cfg *Config[T]) error {
		cfg.Counter = counterType
		return nil
	}
}

// WithCustomCounter allows using a custom counter builder
func WithCustomCounter[T constraints.Integer](builder CounterBuilder[T]) Option[T] {
	return func(cfg *Config[T]) error {
		if builder == nil {
			return ErrNilCounterBuilder
		}
		cfg.NewCounter = builder
		return nil
	}
}

// WithRowPolicy sets how rows with fewer than two elements are handled
func WithRowPolicy[T constraints.Integer](policy types.RowPolicy) Option[T] {
	return func(cfg *Config[T]) error {
		cfg.RowPolicy = policy
		return nil
	}
}

// WithSkipShortRows drops rows with fewer than two elements
func WithSkipShortRows[T constraints.Integer]() Option[T] {
	return WithRowPolicy[T](types.RowSkipShort)
}

// WithLengthPolicy sets how columns of unequal length are paired
func WithLengthPolicy[T constraints.Integer](policy types.LengthPolicy) Option[T] {
	return func(cfg *Config[T]) error {
		cfg.LengthPolicy = policy
		return nil
	}
}
