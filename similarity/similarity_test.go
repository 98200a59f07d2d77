package similarity

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/botirk38/aoc2024/types"
)

// Mock counter that scans the column on every lookup
type scanCounter []int64

func (c scanCounter) Count(v int64) int {
	n := 0
	for _, x := range c {
		if x == v {
			n++
		}
	}
	return n
}

func (c scanCounter) Len() int { return len(c) }

var exampleRows = []types.Row[int64]{
	{3, 4},
	{4, 3},
	{2, 5},
	{1, 3},
	{3, 9},
	{3, 3},
}

func TestColumns(t *testing.T) {
	t.Run("PreservesRowOrder", func(t *testing.T) {
		left, right, err := Columns(exampleRows, types.RowStrict)
		if err != nil {
			t.Fatalf("Columns failed: %v", err)
		}
		if !slices.Equal(left, []int64{3, 4, 2, 1, 3, 3}) {
			t.Errorf("unexpected left column %v", left)
		}
		if !slices.Equal(right, []int64{4, 3, 5, 3, 9, 3}) {
			t.Errorf("unexpected right column %v", right)
		}
	})

	t.Run("ExtraElementsIgnored", func(t *testing.T) {
		left, right, err := Columns([]types.Row[int64]{{1, 2, 3}}, types.RowStrict)
		if err != nil {
			t.Fatalf("Columns failed: %v", err)
		}
		if !slices.Equal(left, []int64{1}) || !slices.Equal(right, []int64{2}) {
			t.Errorf("got %v %v", left, right)
		}
	})

	t.Run("ShortRowStrict", func(t *testing.T) {
		rows := []types.Row[int64]{{1, 2}, {7}}
		_, _, err := Columns(rows, types.RowStrict)
		if !errors.Is(err, ErrRowTooShort) {
			t.Errorf("expected ErrRowTooShort, got %v", err)
		}
	})

	t.Run("ShortRowSkipped", func(t *testing.T) {
		rows := []types.Row[int64]{{1, 2}, {}, {7}, {2, 1}}
		left, right, err := Columns(rows, types.RowSkipShort)
		if err != nil {
			t.Fatalf("Columns failed: %v", err)
		}
		if !slices.Equal(left, []int64{1, 2}) || !slices.Equal(right, []int64{2, 1}) {
			t.Errorf("got %v %v", left, right)
		}
	})

	t.Run("UnknownPolicy", func(t *testing.T) {
		_, _, err := Columns(exampleRows, types.RowPolicy("lenient"))
		if !errors.Is(err, ErrUnknownPolicy) {
			t.Errorf("expected ErrUnknownPolicy, got %v", err)
		}
	})
}

func TestSortedDistance(t *testing.T) {
	t.Run("Example", func(t *testing.T) {
		left := []int64{3, 4, 2, 1, 3, 3}
		right := []int64{4, 3, 5, 3, 9, 3}

		got, err := SortedDistance(left, right, types.LengthStrict)
		if err != nil {
			t.Fatalf("SortedDistance failed: %v", err)
		}
		if got != 11 {
			t.Errorf("Expected 11, got %d", got)
		}

		// Sorting works on copies
		if !slices.Equal(left, []int64{3, 4, 2, 1, 3, 3}) {
			t.Errorf("left column was modified: %v", left)
		}
		if !slices.Equal(right, []int64{4, 3, 5, 3, 9, 3}) {
			t.Errorf("right column was modified: %v", right)
		}
	})

	t.Run("PairsByRankNotByRow", func(t *testing.T) {
		// Row pairing would give |1-2| + |2-1| = 2
		got, err := SortedDistance([]int64{1, 2}, []int64{2, 1}, types.LengthStrict)
		if err != nil {
			t.Fatalf("SortedDistance failed: %v", err)
		}
		if got != 0 {
			t.Errorf("Expected 0, got %d", got)
		}
	})

	t.Run("Negative", func(t *testing.T) {
		got, err := SortedDistance([]int64{-5, 10}, []int64{5, -10}, types.LengthStrict)
		if err != nil {
			t.Fatalf("SortedDistance failed: %v", err)
		}
		if got != 10 {
			t.Errorf("Expected 10, got %d", got)
		}
	})

	t.Run("Unsigned", func(t *testing.T) {
		got, err := SortedDistance([]uint32{1, 9}, []uint32{4, 2}, types.LengthStrict)
		if err != nil {
			t.Fatalf("SortedDistance failed: %v", err)
		}
		if got != 6 {
			t.Errorf("Expected 6, got %d", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		got, err := SortedDistance([]int64{}, []int64{}, types.LengthStrict)
		if err != nil || got != 0 {
			t.Errorf("Expected 0 with no error, got %d, %v", got, err)
		}
	})

	t.Run("LengthMismatchStrict", func(t *testing.T) {
		_, err := SortedDistance([]int64{1, 2, 3}, []int64{1}, types.LengthStrict)
		if !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("expected ErrLengthMismatch, got %v", err)
		}
	})

	t.Run("LengthMismatchTruncate", func(t *testing.T) {
		// sorted: [1 2 30] vs [4 5], last left value has no partner
		got, err := SortedDistance([]int64{30, 2, 1}, []int64{5, 4}, types.LengthTruncate)
		if err != nil {
			t.Fatalf("SortedDistance failed: %v", err)
		}
		if got != 6 {
			t.Errorf("Expected 6, got %d", got)
		}
	})

	t.Run("UnknownPolicy", func(t *testing.T) {
		_, err := SortedDistance([]int64{1}, []int64{}, types.LengthPolicy("pad"))
		if !errors.Is(err, ErrUnknownPolicy) {
			t.Errorf("expected ErrUnknownPolicy, got %v", err)
		}
	})
}

func TestScore(t *testing.T) {
	t.Run("Example", func(t *testing.T) {
		left := []int64{3, 4, 2, 1, 3, 3}
		right := scanCounter{4, 3, 5, 3, 9, 3}
		if got := Score(left, right); got != 31 {
			t.Errorf("Expected 31, got %d", got)
		}
	})

	t.Run("Swapped", func(t *testing.T) {
		if got := Score([]int64{1, 2}, scanCounter{2, 1}); got != 3 {
			t.Errorf("Expected 3, got %d", got)
		}
	})

	t.Run("EmptyRight", func(t *testing.T) {
		if got := Score([]int64{1, 2, 3}, scanCounter{}); got != 0 {
			t.Errorf("Expected 0, got %d", got)
		}
	})

	t.Run("AbsentValues", func(t *testing.T) {
		if got := Score([]int64{7, 8}, scanCounter{1, 2}); got != 0 {
			t.Errorf("Expected 0, got %d", got)
		}
	})
}

func TestScoreByDistinct(t *testing.T) {
	left := []int64{3, 4, 2, 1, 3, 3}
	right := []int64{4, 3, 5, 3, 9, 3}
	if got := ScoreByDistinct(left, right); got != 31 {
		t.Errorf("Expected 31, got %d", got)
	}
}

func TestMetricProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for trial := range 50 {
		n := rng.IntN(40)
		left := make([]int64, n)
		right := make([]int64, n)
		for i := range n {
			left[i] = rng.Int64N(21) - 10
			right[i] = rng.Int64N(21) - 10
		}

		distance, err := SortedDistance(left, right, types.LengthStrict)
		if err != nil {
			t.Fatalf("trial %d: SortedDistance failed: %v", trial, err)
		}
		if distance < 0 {
			t.Errorf("trial %d: negative distance %d", trial, distance)
		}

		score := Score(left, scanCounter(right))
		if alt := ScoreByDistinct(left, right); alt != score {
			t.Errorf("trial %d: Score=%d, ScoreByDistinct=%d", trial, score, alt)
		}

		// Row order must not matter
		perm := rng.Perm(n)
		shuffledLeft := make([]int64, n)
		shuffledRight := make([]int64, n)
		for i, j := range perm {
			shuffledLeft[i] = left[j]
			shuffledRight[i] = right[j]
		}

		shuffledDistance, _ := SortedDistance(shuffledLeft, shuffledRight, types.LengthStrict)
		if shuffledDistance != distance {
			t.Errorf("trial %d: distance changed after shuffle: %d != %d", trial, shuffledDistance, distance)
		}
		if got := Score(shuffledLeft, scanCounter(shuffledRight)); got != score {
			t.Errorf("trial %d: score changed after shuffle: %d != %d", trial, got, score)
		}
	}
}
