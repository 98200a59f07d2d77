// Package reports checks whether level reports change gradually.
//
// A report is safe when its levels are strictly monotonic and every step
// between adjacent levels is between 1 and 3 inclusive.
package reports

import (
	"github.com/botirk38/aoc2024/types"
	"golang.org/x/exp/constraints"
)

const (
	MinStep = 1
	MaxStep = 3
)

// IsSafe reports whether every adjacent difference a[i]-a[i+1] lies in
// [MinStep, MaxStep], or every one lies in [-MaxStep, -MinStep].
// Reports with fewer than two levels are safe.
func IsSafe[T constraints.Signed](report types.Row[T]) bool {
	if len(report) <= 1 {
		return true
	}

	minDiff := report[0] - report[1]
	maxDiff := minDiff
	for i := 1; i < len(report)-1; i++ {
		diff := report[i] - report[i+1]
		minDiff = min(minDiff, diff)
		maxDiff = max(maxDiff, diff)
	}

	decreasing := minDiff >= MinStep && maxDiff <= MaxStep
	increasing := minDiff >= -MaxStep && maxDiff <= -MinStep
	return decreasing || increasing
}

// IsSafeWithDampening reports whether the report is safe, or becomes safe
// after removing any single level.
func IsSafeWithDampening[T constraints.Signed](report types.Row[T]) bool {
	if IsSafe(report) {
		return true
	}

	dampened := make(types.Row[T], 0, len(report))
	for skip := range report {
		dampened = dampened[:0]
		dampened = append(dampened, report[:skip]...)
		dampened = append(dampened, report[skip+1:]...)
		if IsSafe(dampened) {
			return true
		}
	}
	return false
}

// DropEmpty returns the reports that hold at least one level. Blank input
// lines read as empty rows and are not reports.
func DropEmpty[T constraints.Signed](reports []types.Row[T]) []types.Row[T] {
	kept := make([]types.Row[T], 0, len(reports))
	for _, report := range reports {
		if len(report) > 0 {
			kept = append(kept, report)
		}
	}
	return kept
}

// CountSafe returns the number of safe reports.
func CountSafe[T constraints.Signed](reports []types.Row[T]) int {
	return countIf(reports, IsSafe[T])
}

// CountDampenedSafe returns the number of reports that are safe with dampening.
func CountDampenedSafe[T constraints.Signed](reports []types.Row[T]) int {
	return countIf(reports, IsSafeWithDampening[T])
}

func countIf[T constraints.Signed](reports []types.Row[T], pred func(types.Row[T]) bool) int {
	n := 0
	for _, report := range reports {
		if pred(report) {
			n++
		}
	}
	return n
}
