package similarity

import (
	"fmt"
	"slices"

	"github.com/botirk38/aoc2024/types"
	"golang.org/x/exp/constraints"
)

// SortedDistance computes the Manhattan (L1) distance between the two columns
// after sorting each one independently, so the i-th smallest left value is
// paired with the i-th smallest right value. The inputs are not modified.
func SortedDistance[T constraints.Integer](left, right []T, policy types.LengthPolicy) (T, error) {
	n := len(left)
	if len(left) != len(right) {
		switch policy {
		case types.LengthStrict:
			return 0, fmt.Errorf("%w: left has %d values, right has %d", ErrLengthMismatch, len(left), len(right))
		case types.LengthTruncate:
			n = min(len(left), len(right))
		default:
			return 0, fmt.Errorf("%w: length policy %q", ErrUnknownPolicy, policy)
		}
	}

	sortedLeft := slices.Sorted(slices.Values(left))
	sortedRight := slices.Sorted(slices.Values(right))

	var sum T
	for i := range n {
		sum += absDiff(sortedLeft[i], sortedRight[i])
	}

	return sum, nil
}

// absDiff is |a - b|, defined for unsigned types as well.
func absDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
