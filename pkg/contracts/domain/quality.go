package domain

import (
	"time"
)

// ColumnProfile is a per-column quality snapshot. Profiles are produced both
// before and after cleaning; the JSON field names match the summary artifact
// schema consumed by report tooling.
type ColumnProfile struct {
	Column          string   `json:"column"`
	Dtype           string   `json:"dtype"`
	InferredNumeric bool     `json:"inferred_numeric"`
	MissingCount    int      `json:"missing_count"`
	MissingPct      float64  `json:"missing_pct"`
	TypeIssueCount  int      `json:"type_issue_count"`
	TotalIssues     int      `json:"total_issues"`
	UniqueCount     int      `json:"unique_count"`
	SampleValues    []string `json:"sample_values"`
}

// CleaningSummary captures the before/after state of one cleaning run.
type CleaningSummary struct {
	OriginalRows         int             `json:"original_rows"`
	CleanedRows          int             `json:"cleaned_rows"`
	DroppedDuplicates    int             `json:"dropped_duplicates"`
	MissingBeforeTotal   int             `json:"missing_before_total"`
	MissingAfterTotal    int             `json:"missing_after_total"`
	MissingSummaryBefore []ColumnProfile `json:"missing_summary_before"`
	MissingSummaryAfter  []ColumnProfile `json:"missing_summary_after"`
}

// FileSummary wraps a CleaningSummary with dataset-level stats computed
// against the raw input file.
type FileSummary struct {
	Rows            int     `json:"rows"`
	Columns         int     `json:"columns"`
	MissingPct      float64 `json:"missing_pct"`
	NumericCols     int     `json:"numeric_cols"`
	CategoricalCols int     `json:"categorical_cols"`
	CleaningSummary
}

// RunRecord is one entry in the run-history store.
type RunRecord struct {
	RunID            string    `json:"run_id" db:"run_id"`
	UploadedFilename string    `json:"uploaded_filename" db:"uploaded_filename"`
	RawFile          string    `json:"raw_file" db:"raw_file"`
	CleanedFile      string    `json:"cleaned_file" db:"cleaned_file"`
	ReportFile       string    `json:"report_file" db:"report_file"`
	JSONSummary      string    `json:"json_summary" db:"json_summary"`
	Summary          string    `json:"summary" db:"summary"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
