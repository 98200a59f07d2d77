package similarity

import "golang.org/x/exp/constraints"

// ScoreByDistinct computes the similarity score from the two column histograms:
// the sum over distinct v of v * countLeft(v) * countRight(v).
// It always equals Score over the same columns.
func ScoreByDistinct[T constraints.Integer](left, right []T) T {
	leftCounts := histogram(left)
	rightCounts := histogram(right)

	var score T
	for v, nl := range leftCounts {
		score += v * T(nl) * T(rightCounts[v])
	}

	return score
}

func histogram[T constraints.Integer](values []T) map[T]int {
	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	return counts
}
