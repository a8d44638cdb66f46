package cleaning

import (
	"cleanpro/internal/dataset"
)

// numericThreshold is the share of parseable non-missing cells a column must
// exceed (strictly) to be classified numeric. Exactly 80% is not numeric.
const numericThreshold = 0.80

// IsNumericColumn reports whether a column is semantically numeric despite
// its storage type: more than 80% of its non-missing cells parse as numbers.
// A column with no non-missing cells is not numeric.
func IsNumericColumn(col dataset.Column) bool {
	nonMissing := 0
	parseable := 0
	for _, v := range col.Values {
		if dataset.IsMissing(v) {
			continue
		}
		nonMissing++
		if cellIsNumeric(v) {
			parseable++
		}
	}
	if nonMissing == 0 {
		return false
	}
	return float64(parseable)/float64(nonMissing) > numericThreshold
}

// NumericColumns classifies every column of a table, returning flags aligned
// with column order.
func NumericColumns(t dataset.Table) []bool {
	flags := make([]bool, len(t.Columns))
	for i, col := range t.Columns {
		flags[i] = IsNumericColumn(col)
	}
	return flags
}

// cellIsNumeric reports whether a single non-missing cell carries or parses
// to a number.
func cellIsNumeric(v dataset.Value) bool {
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
