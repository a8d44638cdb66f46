package cleaning

import (
	"cleanpro/internal/dataset"
)

// ReplacePlaceholders returns a copy of the table in which placeholder text
// cells of generic columns are replaced by explicit nulls. Natively typed
// columns are untouched: their nulls are already nulls.
func ReplacePlaceholders(t dataset.Table) dataset.Table {
	out := t.Clone()
	for i := range out.Columns {
		col := &out.Columns[i]
		if col.Type != dataset.TypeGeneric {
			continue
		}
		for j, v := range col.Values {
			if dataset.IsPlaceholder(v) {
				col.Values[j] = dataset.Null()
			}
		}
	}
	return out
}

// CoerceNumeric returns a copy of the table in which every column flagged
// numeric but still stored as text is converted to a native numeric column.
// Cells that fail to parse become null rather than erroring; unflagged
// columns are left untouched.
func CoerceNumeric(t dataset.Table, numeric []bool) dataset.Table {
	out := t.Clone()
	for i := range out.Columns {
		col := &out.Columns[i]
		if i >= len(numeric) || !numeric[i] || col.Type != dataset.TypeGeneric {
			continue
		}
		for j, v := range col.Values {
			switch v.Kind {
			case dataset.KindNull:
				// already null
			case dataset.KindNumber:
				// already numeric
			default:
				if f, ok := dataset.ParseNumber(v.String()); ok {
					col.Values[j] = dataset.Number(f)
				} else {
					col.Values[j] = dataset.Null()
				}
			}
		}
		col.Type = dataset.TypeNumeric
	}
	return out
}
