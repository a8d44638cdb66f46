package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"cleanpro/internal/cleaning"
	"cleanpro/internal/config"
	"cleanpro/internal/dataset"
	"cleanpro/internal/infrastructure"
	"cleanpro/internal/quality"
	"cleanpro/internal/report"
	"cleanpro/internal/runstore"
	"cleanpro/pkg/contracts/domain"
)

// CleanService orchestrates one cleaning run end to end: read the input
// table, run the pipeline, write the cleaned CSV plus report artifacts, and
// append the run to the history store. Each request is an independent,
// stateless unit of work.
type CleanService struct {
	logger   *slog.Logger
	pipeline *cleaning.Pipeline
	store    *runstore.Store
	validate *validator.Validate
	paths    config.PathsConfig
	defaults config.CleaningConfig
}

// NewCleanService creates the service. The store may be nil, in which case
// run history is skipped entirely.
func NewCleanService(logger *slog.Logger, paths config.PathsConfig, defaults config.CleaningConfig, store *runstore.Store) *CleanService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CleanService{
		logger:   logger,
		pipeline: cleaning.NewPipeline(logger),
		store:    store,
		validate: validator.New(),
		paths:    paths,
		defaults: defaults,
	}
}

// CleanRequest describes one file to clean.
type CleanRequest struct {
	InputPath string `validate:"required"`
	Title     string
	// DropDuplicates overrides the configured default when non-nil.
	DropDuplicates *bool
}

// CleanResult names the artifacts of one run alongside the summary.
type CleanResult struct {
	RunID       string             `json:"run_id"`
	RawFile     string             `json:"raw_file"`
	CleanedFile string             `json:"cleaned_file"`
	ReportFile  string             `json:"report_file"`
	JSONSummary string             `json:"json_summary"`
	Summary     domain.FileSummary `json:"summary"`
}

// CleanFile runs the full clean for a single input file.
func (s *CleanService) CleanFile(ctx context.Context, req CleanRequest) (CleanResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return CleanResult{}, fmt.Errorf("invalid clean request: %w", err)
	}

	runID := newRunID()
	ctx = infrastructure.WithRunID(ctx, runID)

	filename := filepath.Base(req.InputPath)
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))

	s.logger.InfoContext(ctx, "cleaning file", slog.String("input", req.InputPath))

	table, err := dataset.ReadFile(req.InputPath)
	if err != nil {
		return CleanResult{}, err
	}

	opts := cleaning.Options{DropDuplicates: s.defaults.DropDuplicates}
	if req.DropDuplicates != nil {
		opts.DropDuplicates = *req.DropDuplicates
	}

	cleaned, cleanSummary, err := s.pipeline.Clean(ctx, table, opts)
	if err != nil {
		return CleanResult{}, err
	}

	summary := fileSummary(table, cleanSummary)

	cleanedPath := filepath.Join(s.paths.ProcessedDir, fmt.Sprintf("%s_%s_cleaned.csv", stem, runID))
	if err := dataset.WriteCSV(cleanedPath, cleaned, dataset.WriteOptions{BOMPrefix: true}); err != nil {
		return CleanResult{}, err
	}

	title := req.Title
	if title == "" {
		title = "Summary: " + filename
	}
	reportPath := filepath.Join(s.paths.ReportsDir, fmt.Sprintf("%s_%s_report.txt", stem, runID))
	if err := report.WriteTextReport(summary, reportPath, title); err != nil {
		return CleanResult{}, err
	}
	jsonPath := filepath.Join(s.paths.ReportsDir, fmt.Sprintf("%s_%s_summary.json", stem, runID))
	if err := report.SaveJSONSummary(summary, jsonPath); err != nil {
		return CleanResult{}, err
	}

	result := CleanResult{
		RunID:       runID,
		RawFile:     req.InputPath,
		CleanedFile: cleanedPath,
		ReportFile:  reportPath,
		JSONSummary: jsonPath,
		Summary:     summary,
	}

	s.recordRun(ctx, filename, result)

	s.logger.InfoContext(ctx, "cleaning finished",
		slog.String("cleaned_file", cleanedPath),
		slog.Int("cleaned_rows", summary.CleanedRows),
		slog.Int("dropped_duplicates", summary.DroppedDuplicates))

	return result, nil
}

// CleanBatch cleans every CSV and XLSX file in a directory with bounded
// concurrency. Per-file failures are logged and skipped; the batch itself
// only fails when the directory cannot be listed.
func (s *CleanService) CleanBatch(ctx context.Context, dir string) ([]CleanResult, error) {
	var inputs []string
	for _, pattern := range []string{"*.csv", "*.xlsx"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("list %s in %s: %w", pattern, dir, err)
		}
		inputs = append(inputs, matches...)
	}

	var (
		mu      sync.Mutex
		results []CleanResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.defaults.BatchConcurrency)

	for _, input := range inputs {
		input := input
		g.Go(func() error {
			result, err := s.CleanFile(gctx, CleanRequest{InputPath: input})
			if err != nil {
				s.logger.ErrorContext(gctx, "batch item failed",
					slog.String("input", input),
					slog.String("error", err.Error()))
				return nil
			}
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "batch finished",
		slog.Int("inputs", len(inputs)),
		slog.Int("cleaned", len(results)))

	return results, nil
}

// Profile performs read-only quality analysis of a file: column profiles
// without mutating or writing anything.
func (s *CleanService) Profile(ctx context.Context, path string) ([]domain.ColumnProfile, error) {
	table, err := dataset.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return quality.Summarize(table, cleaning.NumericColumns(table)), nil
}

// recordRun appends the run to the history store, best-effort. Failures are
// logged and never propagate to the caller.
func (s *CleanService) recordRun(ctx context.Context, filename string, result CleanResult) {
	if s.store == nil {
		return
	}
	summaryJSON, err := json.Marshal(result.Summary)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to marshal summary for run history",
			slog.String("error", err.Error()))
		return
	}
	rec := domain.RunRecord{
		RunID:            result.RunID,
		UploadedFilename: filename,
		RawFile:          result.RawFile,
		CleanedFile:      result.CleanedFile,
		ReportFile:       result.ReportFile,
		JSONSummary:      result.JSONSummary,
		Summary:          string(summaryJSON),
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.store.Record(ctx, rec); err != nil {
		s.logger.WarnContext(ctx, "failed to persist run history",
			slog.String("error", err.Error()))
	}
}

// fileSummary augments the pipeline summary with dataset-level stats taken
// from the raw table, matching the summary artifact schema.
func fileSummary(raw dataset.Table, cs domain.CleaningSummary) domain.FileSummary {
	rows := raw.RowCount()
	cols := len(raw.Columns)

	missingCells := 0
	for _, col := range raw.Columns {
		for _, v := range col.Values {
			if dataset.IsMissing(v) {
				missingCells++
			}
		}
	}
	pct := 0.0
	if rows*cols > 0 {
		pct = math.Round(float64(missingCells)/float64(rows*cols)*100*100) / 100
	}

	numericCols := 0
	for _, flagged := range cleaning.NumericColumns(raw) {
		if flagged {
			numericCols++
		}
	}

	return domain.FileSummary{
		Rows:            rows,
		Columns:         cols,
		MissingPct:      pct,
		NumericCols:     numericCols,
		CategoricalCols: cols - numericCols,
		CleaningSummary: cs,
	}
}

// newRunID returns a short unique id for one run, the first 8 hex chars of
// a UUID.
func newRunID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
