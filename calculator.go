// Package aoc2024 computes aggregate metrics over two-column integer lists.
//
// The left and right columns are sorted independently before the distance is
// taken, so values are paired by rank rather than by the row they came from.
package aoc2024

import (
	"fmt"

	"github.com/botirk38/aoc2024/options"
	"github.com/botirk38/aoc2024/similarity"
	"github.com/botirk38/aoc2024/types"
	"golang.org/x/exp/constraints"
)

// Calculator computes the distance and similarity score of a list of pairs.
type Calculator[T constraints.Integer] struct {
	newCounter   options.CounterBuilder[T]
	rowPolicy    types.RowPolicy
	lengthPolicy types.LengthPolicy
}

// New creates a Calculator with functional options.
func New[T constraints.Integer](opts ...options.Option[T]) (*Calculator[T], error) {
	cfg := options.NewConfig[T]()

	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Calculator[T]{
		newCounter:   cfg.CounterBuilder(),
		rowPolicy:    cfg.RowPolicy,
		lengthPolicy: cfg.LengthPolicy,
	}, nil
}

// Compute returns the metrics for rows. Only the first two elements of each
// row are used. Nothing is computed if any step fails.
func (c *Calculator[T]) Compute(rows []types.Row[T]) (types.Metrics[T], error) {
	left, right, err := similarity.Columns(rows, c.rowPolicy)
	if err != nil {
		return types.Metrics[T]{}, err
	}

	return c.ComputeColumns(left, right)
}

// ComputeColumns returns the metrics for already separated columns.
func (c *Calculator[T]) ComputeColumns(left, right []T) (types.Metrics[T], error) {
	distance, err := similarity.SortedDistance(left, right, c.lengthPolicy)
	if err != nil {
		return types.Metrics[T]{}, err
	}

	counter, err := c.newCounter(right)
	if err != nil {
		return types.Metrics[T]{}, fmt.Errorf("failed to build counter: %w", err)
	}

	return types.Metrics[T]{
		Distance: distance,
		Score:    similarity.Score(left, counter),
	}, nil
}

// DistanceAndScore computes the metrics for rows with the default configuration.
func DistanceAndScore[T constraints.Integer](rows []types.Row[T]) (distance, score T, err error) {
	calc, err := New[T]()
	if err != nil {
		return 0, 0, err
	}

	metrics, err := calc.Compute(rows)
	if err != nil {
		return 0, 0, err
	}
	return metrics.Distance, metrics.Score, nil
}
