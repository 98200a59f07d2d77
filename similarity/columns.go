package similarity

import (
	"fmt"

	"github.com/botirk38/aoc2024/types"
	"golang.org/x/exp/constraints"
)

// Columns splits rows into the left and right columns, preserving row order.
// Only the first two elements of a row are used.
func Columns[T constraints.Integer](rows []types.Row[T], policy types.RowPolicy) (left, right []T, err error) {
	if policy != types.RowStrict && policy != types.RowSkipShort {
		return nil, nil, fmt.Errorf("%w: row policy %q", ErrUnknownPolicy, policy)
	}

	left = make([]T, 0, len(rows))
	right = make([]T, 0, len(rows))

	for i, row := range rows {
		if len(row) < 2 {
			if policy == types.RowSkipShort {
				continue
			}
			return nil, nil, fmt.Errorf("%w: row %d has %d", ErrRowTooShort, i+1, len(row))
		}
		left = append(left, row[0])
		right = append(right, row[1])
	}

	return left, right, nil
}
