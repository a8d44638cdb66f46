package dataset

import (
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "cleanpro/internal/errors"
)

// ReadXLSX loads a table from the first sheet of an Excel workbook. The
// first row is the required header; type inference matches the CSV reader.
func ReadXLSX(path string) (Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Table{}, apperrors.FileNotFound(path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, apperrors.ErrEmptyHeader.WithDetails(path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %q of %s: %w", sheets[0], path, err)
	}
	if len(rows) == 0 || !hasContent(rows[0]) {
		return Table{}, apperrors.ErrEmptyHeader.WithDetails(path)
	}

	return fromRaw(rows[0], rows[1:])
}

func hasContent(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}
