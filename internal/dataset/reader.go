package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "cleanpro/internal/errors"
)

// ReadFile loads a table from a CSV or XLSX file, dispatching on extension.
func ReadFile(path string) (Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return Table{}, apperrors.ErrUnsupportedFormat.WithDetails(path)
	}
}

// ReadCSV loads a table from a comma-separated UTF-8 file. The first row is
// the required header; a leading BOM is tolerated.
func ReadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Table{}, apperrors.FileNotFound(path, err)
		}
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return Table{}, apperrors.ErrEmptyHeader.WithDetails(path)
	}
	if err != nil {
		return Table{}, fmt.Errorf("read header of %s: %w", path, err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("read %s: %w", path, err)
		}
		rows = append(rows, record)
	}

	return fromRaw(header, rows)
}

// fromRaw builds a typed table from a header and raw string rows. Short rows
// are padded with empty cells so the equal-length invariant holds; rows with
// more cells than the header carry data no column can hold and are rejected.
func fromRaw(header []string, rows [][]string) (Table, error) {
	for i, row := range rows {
		if len(row) > len(header) {
			return Table{}, apperrors.ErrInvalidInput.WithDetails(
				fmt.Sprintf("row %d has %d cells but the header has %d columns", i+2, len(row), len(header)))
		}
	}

	t := Table{Columns: make([]Column, len(header))}
	for i, name := range header {
		raw := make([]string, len(rows))
		for j, row := range rows {
			if i < len(row) {
				raw[j] = row[i]
			}
		}
		t.Columns[i] = inferColumn(strings.TrimSpace(name), raw)
	}
	return t, nil
}

// inferColumn decides the storage type of a column from its raw cells. A
// column is stored natively typed only when every non-empty cell parses as
// that type; anything else stays generic text. Empty cells read as null in
// every case.
func inferColumn(name string, raw []string) Column {
	var nonEmpty []string
	for _, s := range raw {
		if strings.TrimSpace(s) != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}

	colType := TypeGeneric
	if len(nonEmpty) > 0 {
		switch {
		case allParse(nonEmpty, func(s string) bool { _, ok := ParseNumber(s); return ok }):
			colType = TypeNumeric
		case allParse(nonEmpty, func(s string) bool { _, ok := ParseDate(s); return ok }):
			colType = TypeDatetime
		case allParse(nonEmpty, func(s string) bool { _, ok := ParseBool(s); return ok }):
			colType = TypeBool
		}
	}

	values := make([]Value, len(raw))
	for i, s := range raw {
		if strings.TrimSpace(s) == "" {
			values[i] = Null()
			continue
		}
		switch colType {
		case TypeNumeric:
			f, _ := ParseNumber(s)
			values[i] = Number(f)
		case TypeDatetime:
			d, _ := ParseDate(s)
			values[i] = Date(d)
		case TypeBool:
			b, _ := ParseBool(s)
			values[i] = Boolean(b)
		default:
			values[i] = Text(s)
		}
	}

	return Column{Name: name, Type: colType, Values: values}
}

func allParse(cells []string, parse func(string) bool) bool {
	for _, s := range cells {
		if !parse(s) {
			return false
		}
	}
	return true
}
