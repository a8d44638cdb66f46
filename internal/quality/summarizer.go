// Package quality computes per-column and dataset-level quality statistics:
// missing counts, type issues, uniqueness, and sample values. It is callable
// on its own for read-only analysis; the cleaning pipeline uses it for the
// before/after halves of the cleaning summary.
package quality

import (
	"math"
	"sort"
	"strconv"

	"cleanpro/internal/dataset"
	"cleanpro/pkg/contracts/domain"
)

// sampleLimit caps how many distinct example values a profile carries.
const sampleLimit = 3

// Summarize profiles every column of a table. The numeric flags come from
// the classifier and are aligned with column order; type issues are counted
// only for flagged columns. Profiles are ordered by descending total issues,
// with ties keeping original column order.
func Summarize(t dataset.Table, numeric []bool) []domain.ColumnProfile {
	total := t.RowCount()
	profiles := make([]domain.ColumnProfile, len(t.Columns))
	for i, col := range t.Columns {
		flagged := i < len(numeric) && numeric[i]
		profiles[i] = profileColumn(col, total, flagged)
	}

	// Stable sort keeps original column order among equal issue counts.
	sortProfiles(profiles)
	return profiles
}

// TotalIssues sums missing cells and type issues across the whole table,
// using the same counting rules as Summarize.
func TotalIssues(t dataset.Table, numeric []bool) int {
	total := 0
	for i, col := range t.Columns {
		flagged := i < len(numeric) && numeric[i]
		missing, typeIssues := countIssues(col, flagged)
		total += missing + typeIssues
	}
	return total
}

func profileColumn(col dataset.Column, rowCount int, numeric bool) domain.ColumnProfile {
	missing, typeIssues := countIssues(col, numeric)

	pct := 0.0
	if rowCount > 0 {
		pct = math.Round(float64(missing)/float64(rowCount)*100*100) / 100
	}

	seen := make(map[string]struct{})
	var samples []string
	unique := 0
	for _, v := range col.Values {
		if dataset.IsMissing(v) {
			continue
		}
		key := strconv.Itoa(int(v.Kind)) + "\x1f" + v.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique++
		if len(samples) < sampleLimit {
			samples = append(samples, v.String())
		}
	}

	return domain.ColumnProfile{
		Column:          col.Name,
		Dtype:           string(col.Type),
		InferredNumeric: numeric,
		MissingCount:    missing,
		MissingPct:      pct,
		TypeIssueCount:  typeIssues,
		TotalIssues:     missing + typeIssues,
		UniqueCount:     unique,
		SampleValues:    samples,
	}
}

// countIssues counts missing cells and, for numeric-flagged columns, the
// non-missing cells that fail a numeric parse.
func countIssues(col dataset.Column, numeric bool) (missing, typeIssues int) {
	for _, v := range col.Values {
		if dataset.IsMissing(v) {
			missing++
			continue
		}
		if numeric && !parsesNumeric(v) {
			typeIssues++
		}
	}
	return missing, typeIssues
}

func parsesNumeric(v dataset.Value) bool {
	switch v.Kind {
	case dataset.KindNumber:
		return true
	case dataset.KindText:
		_, ok := dataset.ParseNumber(v.Str)
		return ok
	default:
		return false
	}
}

func sortProfiles(profiles []domain.ColumnProfile) {
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].TotalIssues > profiles[j].TotalIssues
	})
}
