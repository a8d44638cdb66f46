package cleaning

import (
	"sort"
	"time"

	"cleanpro/internal/dataset"
)

// missingSentinel fills categorical columns that have no non-null values to
// learn a mode from.
const missingSentinel = "Unknown"

// FillColumn returns a copy of the column with nulls imputed by storage-type
// heuristics:
//
//   - numeric: median of the non-null values; 0 when the column is all null
//   - datetime: earliest non-null value; left null when all null, since a
//     date cannot be invented
//   - anything else: most frequent non-null value, first-encountered winning
//     ties; the "Unknown" sentinel when there are no non-null values
func FillColumn(col dataset.Column) dataset.Column {
	out := dataset.Column{Name: col.Name, Type: col.Type, Values: make([]dataset.Value, len(col.Values))}
	copy(out.Values, col.Values)

	var fill dataset.Value
	switch col.Type {
	case dataset.TypeNumeric:
		fill = dataset.Number(medianOf(col))
	case dataset.TypeDatetime:
		min, ok := minDateOf(col)
		if !ok {
			return out
		}
		fill = dataset.Date(min)
	default:
		fill = modeOf(col)
	}

	for i, v := range out.Values {
		if v.IsNull() {
			out.Values[i] = fill
		}
	}
	return out
}

// medianOf computes the median of a numeric column's non-null cells, or 0
// when there are none. Even-length columns take the mean of the two middle
// values.
func medianOf(col dataset.Column) float64 {
	var nums []float64
	for _, v := range col.Values {
		if !v.IsNull() && v.Kind == dataset.KindNumber {
			nums = append(nums, v.Num)
		}
	}
	if len(nums) == 0 {
		return 0
	}
	sort.Float64s(nums)
	mid := len(nums) / 2
	if len(nums)%2 == 1 {
		return nums[mid]
	}
	return (nums[mid-1] + nums[mid]) / 2
}

// minDateOf returns the earliest non-null date in the column.
func minDateOf(col dataset.Column) (min time.Time, ok bool) {
	for _, v := range col.Values {
		if v.IsNull() || v.Kind != dataset.KindDate {
			continue
		}
		if !ok || v.Time.Before(min) {
			min = v.Time
			ok = true
		}
	}
	return min, ok
}

// modeOf returns the most frequent non-null value of a column, breaking ties
// by first encounter so the result is deterministic for identical input.
// Columns with no non-null values fall back to the sentinel.
func modeOf(col dataset.Column) dataset.Value {
	counts := make(map[string]int)
	order := make(map[string]int)
	values := make(map[string]dataset.Value)

	next := 0
	for _, v := range col.Values {
		if v.IsNull() {
			continue
		}
		key := cellKey(v)
		if _, seen := counts[key]; !seen {
			order[key] = next
			values[key] = v
			next++
		}
		counts[key]++
	}
	if len(counts) == 0 {
		return dataset.Text(missingSentinel)
	}

	bestKey := ""
	for key, n := range counts {
		if bestKey == "" || n > counts[bestKey] || (n == counts[bestKey] && order[key] < order[bestKey]) {
			bestKey = key
		}
	}
	return values[bestKey]
}
