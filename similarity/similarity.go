// Package similarity provides the column reductions behind the pair metrics:
// rank-aligned distance and occurrence-weighted similarity score.
package similarity

import (
	"github.com/botirk38/aoc2024/types"
	"golang.org/x/exp/constraints"
)

// Score sums v * count(v) over every value in left.
// Duplicates in left contribute once per occurrence, and values absent from
// the right column contribute 0.
func Score[T constraints.Integer](left []T, right types.Counter[T]) T {
	var score T
	for _, v := range left {
		score += v * T(right.Count(v))
	}
	return score
}
