package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// WriteOptions configures CSV output.
type WriteOptions struct {
	// BOMPrefix adds a UTF-8 BOM so Excel recognizes the encoding.
	BOMPrefix bool
}

// WriteCSV persists a table to a CSV file, preserving column order and
// header. Parent directories are created as needed.
func WriteCSV(path string, t Table, opts WriteOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if opts.BOMPrefix {
		if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(t.Headers()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := 0; i < t.RowCount(); i++ {
		record := make([]string, len(t.Columns))
		for j, c := range t.Columns {
			record[j] = c.Values[i].String()
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	slog.Debug("wrote CSV file",
		slog.String("path", path),
		slog.Int("rows", t.RowCount()),
		slog.Int("columns", len(t.Columns)))

	return w.Error()
}
