// Package report renders cleaning summaries into the artifacts callers
// consume: an indented JSON summary and a plain-text report with the
// per-column before/after table.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"cleanpro/pkg/contracts/domain"
)

// SaveJSONSummary writes the summary as indented JSON, creating parent
// directories as needed. All numeric fields serialize as JSON-native
// numbers.
func SaveJSONSummary(summary domain.FileSummary, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteTextReport writes a human-readable report derived from the summary:
// title, run counts, and a per-column table of missing percentages before
// and after cleaning.
func WriteTextReport(summary domain.FileSummary, path, title string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
	fmt.Fprintf(&b, "Generated: %s UTC\n", time.Now().UTC().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Original rows: %d\n", summary.OriginalRows)
	fmt.Fprintf(&b, "Cleaned rows: %d\n", summary.CleanedRows)
	fmt.Fprintf(&b, "Dropped duplicates: %d\n", summary.DroppedDuplicates)
	fmt.Fprintf(&b, "Issues before: %d\n", summary.MissingBeforeTotal)
	fmt.Fprintf(&b, "Issues after: %d\n\n", summary.MissingAfterTotal)

	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Column\tMissing % (before)\tMissing % (after)\tDtype (after)")

	before := profilesByColumn(summary.MissingSummaryBefore)
	after := profilesByColumn(summary.MissingSummaryAfter)
	for _, col := range sortedColumns(before, after) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			col,
			formatPct(before, col),
			formatPct(after, col),
			dtypeOf(after, col))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("render report table: %w", err)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func profilesByColumn(profiles []domain.ColumnProfile) map[string]domain.ColumnProfile {
	m := make(map[string]domain.ColumnProfile, len(profiles))
	for _, p := range profiles {
		m[p.Column] = p
	}
	return m
}

func sortedColumns(before, after map[string]domain.ColumnProfile) []string {
	seen := make(map[string]struct{})
	var cols []string
	for col := range before {
		if _, ok := seen[col]; !ok {
			seen[col] = struct{}{}
			cols = append(cols, col)
		}
	}
	for col := range after {
		if _, ok := seen[col]; !ok {
			seen[col] = struct{}{}
			cols = append(cols, col)
		}
	}
	sort.Strings(cols)
	return cols
}

func formatPct(profiles map[string]domain.ColumnProfile, col string) string {
	p, ok := profiles[col]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%.2f%%", p.MissingPct)
}

func dtypeOf(profiles map[string]domain.ColumnProfile, col string) string {
	if p, ok := profiles[col]; ok {
		return p.Dtype
	}
	return ""
}
