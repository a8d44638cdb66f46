package cleaning

import (
	"strconv"
	"strings"

	"cleanpro/internal/dataset"
)

// DropDuplicates removes exact whole-row duplicates, keeping the first
// occurrence in original row order. Rows match only when every cell compares
// equal by value; a single differing cell keeps both rows. Returns the
// deduplicated table and the number of rows dropped.
func DropDuplicates(t dataset.Table) (dataset.Table, int) {
	original := t.RowCount()
	if original == 0 {
		return t.Clone(), 0
	}

	seen := make(map[string]struct{}, original)
	keep := make([]int, 0, original)
	for i := 0; i < original; i++ {
		key := rowKey(t, i)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, i)
	}

	out := dataset.Table{Columns: make([]dataset.Column, len(t.Columns))}
	for j, col := range t.Columns {
		values := make([]dataset.Value, len(keep))
		for k, i := range keep {
			values[k] = col.Values[i]
		}
		out.Columns[j] = dataset.Column{Name: col.Name, Type: col.Type, Values: values}
	}

	return out, original - len(keep)
}

// rowKey builds a kind-tagged key for one row so that e.g. the number 1 and
// the text "1" never collide.
func rowKey(t dataset.Table, i int) string {
	var b strings.Builder
	for _, col := range t.Columns {
		b.WriteString(cellKey(col.Values[i]))
	}
	return b.String()
}

// cellKey encodes one cell as kind tag plus length-prefixed canonical text.
// The length prefix keeps segment boundaries fixed no matter what bytes the
// cell contains.
func cellKey(v dataset.Value) string {
	if v.IsNull() {
		return "n;"
	}
	s := v.String()
	return strconv.Itoa(int(v.Kind)) + ":" + strconv.Itoa(len(s)) + ":" + s + ";"
}
