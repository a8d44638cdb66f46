package cleaning

import (
	"context"
	"log/slog"

	"cleanpro/internal/dataset"
	apperrors "cleanpro/internal/errors"
	"cleanpro/internal/quality"
	"cleanpro/pkg/contracts/domain"
)

// Options controls the one configurable step of the pipeline.
type Options struct {
	DropDuplicates bool
}

// DefaultOptions enables duplicate removal.
func DefaultOptions() Options {
	return Options{DropDuplicates: true}
}

// Pipeline sequences the cleaning steps over one table and assembles the
// cleaning summary. Pipelines are stateless between runs; concurrent Clean
// calls on different tables are independent.
type Pipeline struct {
	logger *slog.Logger
}

// NewPipeline creates a pipeline. A nil logger falls back to slog.Default.
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger}
}

// Clean runs the fixed cleaning sequence:
//
//  1. classify numeric columns against the original table
//  2. count issues before cleaning
//  3. replace placeholder text with nulls
//  4. drop exact duplicate rows (optional)
//  5. coerce classified columns to numeric
//  6. impute nulls per column
//  7. recount issues on the cleaned table
//  8. assemble the summary with before/after profiles
//
// The input table is never mutated. The after-counts are recomputed from the
// imputed table rather than assumed zero, so residual nulls (an all-null
// datetime column) surface honestly.
func (p *Pipeline) Clean(ctx context.Context, t dataset.Table, opts Options) (dataset.Table, domain.CleaningSummary, error) {
	if err := t.Validate(); err != nil {
		return dataset.Table{}, domain.CleaningSummary{}, apperrors.InvalidInput(err)
	}

	originalRows := t.RowCount()
	numeric := NumericColumns(t)
	missingBefore := quality.TotalIssues(t, numeric)
	profilesBefore := quality.Summarize(t, numeric)

	p.logger.InfoContext(ctx, "starting clean",
		slog.Int("rows", originalRows),
		slog.Int("columns", len(t.Columns)),
		slog.Int("issues_before", missingBefore),
		slog.Bool("drop_duplicates", opts.DropDuplicates))

	working := ReplacePlaceholders(t)

	dropped := 0
	if opts.DropDuplicates {
		working, dropped = DropDuplicates(working)
	}

	working = CoerceNumeric(working, numeric)

	for i := range working.Columns {
		working.Columns[i] = FillColumn(working.Columns[i])
	}

	missingAfter := quality.TotalIssues(working, numeric)
	profilesAfter := quality.Summarize(working, numeric)

	if missingAfter > 0 {
		p.logger.WarnContext(ctx, "residual missing cells after imputation",
			slog.Int("missing_after", missingAfter))
	}

	summary := domain.CleaningSummary{
		OriginalRows:         originalRows,
		CleanedRows:          working.RowCount(),
		DroppedDuplicates:    dropped,
		MissingBeforeTotal:   missingBefore,
		MissingAfterTotal:    missingAfter,
		MissingSummaryBefore: profilesBefore,
		MissingSummaryAfter:  profilesAfter,
	}

	p.logger.InfoContext(ctx, "clean finished",
		slog.Int("cleaned_rows", summary.CleanedRows),
		slog.Int("dropped_duplicates", dropped),
		slog.Int("issues_after", missingAfter))

	return working, summary, nil
}
