// Package stats holds the pure reductions applied to fetched rows before they are
// handed to the renderer: counts, averages, maxima and lifecycle status.
//
// Nothing in this package performs I/O or keeps state between calls.
package stats

import "time"

// Selector extracts a numeric field from a row. ok=false marks a missing or null
// value, which every reduction counts as 0.
type Selector[T any] func(row T) (v float64, ok bool)

// Float adapts a nullable float column.
func Float(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Int adapts a nullable integer column.
func Int(p *int64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return float64(*p), true
}

// Time adapts a nullable timestamp so rows can be compared by recency.
func Time(p *time.Time) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return float64(p.UnixNano()), true
}

func value[T any](row T, sel Selector[T]) float64 {
	v, ok := sel(row)
	if !ok {
		return 0
	}
	return v
}

// Count returns the number of rows.
func Count[T any](rows []T) int {
	return len(rows)
}

// Sum adds selector values, missing values count as 0.
func Sum[T any](rows []T, sel Selector[T]) float64 {
	var total float64
	for _, r := range rows {
		total += value(r, sel)
	}
	return total
}

// Average divides the sum by max(len(rows), 1), so empty input yields 0.
func Average[T any](rows []T, sel Selector[T]) float64 {
	return Sum(rows, sel) / float64(max(Count(rows), 1))
}

// MaxBy returns the row with the greatest selector value. The first row wins on
// ties. ok is false for empty input.
func MaxBy[T any](rows []T, sel Selector[T]) (best T, ok bool) {
	if len(rows) == 0 {
		return best, false
	}

	best = rows[0]
	bestVal := value(best, sel)
	for _, r := range rows[1:] {
		if v := value(r, sel); v > bestVal {
			best, bestVal = r, v
		}
	}
	return best, true
}

// NormalizedPercentage brings a percentage onto the 0-100 scale. Upstream rows
// store either fractions or percentages; anything above 1 is taken as already
// scaled, so exactly 1 becomes 100.
func NormalizedPercentage(raw float64) float64 {
	if raw > 1 {
		return raw
	}
	return raw * 100
}

// Percentage wraps a selector so its values are normalized before use.
func Percentage[T any](sel Selector[T]) Selector[T] {
	return func(row T) (float64, bool) {
		v, ok := sel(row)
		if !ok {
			return 0, false
		}
		return NormalizedPercentage(v), true
	}
}

// AveragePercentage averages a percentage-like field after normalization.
func AveragePercentage[T any](rows []T, sel Selector[T]) float64 {
	return Average(rows, Percentage(sel))
}
