// Package runstore persists cleaning-run records to an embedded SQLite
// database. The store is append-only and best-effort: callers log write
// failures and carry on, a broken history store never aborts a cleaning
// result.
package runstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	apperrors "cleanpro/internal/errors"
	"cleanpro/pkg/contracts/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS clean_runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	uploaded_filename TEXT NOT NULL,
	raw_file TEXT NOT NULL,
	cleaned_file TEXT NOT NULL,
	report_file TEXT NOT NULL,
	json_summary TEXT NOT NULL,
	summary TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
`

// Store is a lifetime-scoped handle to the run-history database. Construct
// it once at process start and close it at shutdown; there is no implicit
// global connection state.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures the clean_runs table exists.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStoreUnavailable.Code, "create history directory")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStoreUnavailable.Code, "open history database")
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, apperrors.Wrap(err, apperrors.ErrStoreUnavailable.Code, "ensure clean_runs table")
	}

	logger.Debug("run-history store opened", slog.String("path", path))
	return &Store{db: db, logger: logger}, nil
}

// Record appends one run record.
func (s *Store) Record(ctx context.Context, rec domain.RunRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO clean_runs
			(run_id, uploaded_filename, raw_file, cleaned_file, report_file, json_summary, summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.UploadedFilename, rec.RawFile, rec.CleanedFile,
		rec.ReportFile, rec.JSONSummary, rec.Summary, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("record run %s: %w", rec.RunID, err)
	}
	return nil
}

// List returns up to limit run records, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, uploaded_filename, raw_file, cleaned_file, report_file, json_summary, summary, created_at
		FROM clean_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []domain.RunRecord
	for rows.Next() {
		var rec domain.RunRecord
		if err := rows.Scan(&rec.RunID, &rec.UploadedFilename, &rec.RawFile, &rec.CleanedFile,
			&rec.ReportFile, &rec.JSONSummary, &rec.Summary, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
