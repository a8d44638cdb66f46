package dataset

import (
	"fmt"
)

// Type is the storage type of a column.
type Type string

const (
	// TypeGeneric holds untyped text cells, the default after reading.
	TypeGeneric Type = "text"
	// TypeNumeric holds float64 cells.
	TypeNumeric Type = "numeric"
	// TypeDatetime holds date cells.
	TypeDatetime Type = "datetime"
	// TypeBool holds boolean cells.
	TypeBool Type = "bool"
)

// Column is an ordered sequence of typed cells under a name.
type Column struct {
	Name   string
	Type   Type
	Values []Value
}

// NonNull returns the column's non-null values in row order.
func (c Column) NonNull() []Value {
	out := make([]Value, 0, len(c.Values))
	for _, v := range c.Values {
		if !v.IsNull() {
			out = append(out, v)
		}
	}
	return out
}

// Table is an ordered collection of named columns sharing one row count.
type Table struct {
	Columns []Column
}

// RowCount returns the shared row count. An empty table has zero rows.
func (t Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Validate checks the structural invariant: every column has the same
// number of cells.
func (t Table) Validate() error {
	if len(t.Columns) == 0 {
		return nil
	}
	n := len(t.Columns[0].Values)
	for _, c := range t.Columns {
		if len(c.Values) != n {
			return fmt.Errorf("column %q has %d cells, want %d", c.Name, len(c.Values), n)
		}
	}
	return nil
}

// Clone returns a deep copy of the table. Transformations operate on clones
// so the input table is never mutated in place.
func (t Table) Clone() Table {
	out := Table{Columns: make([]Column, len(t.Columns))}
	for i, c := range t.Columns {
		vals := make([]Value, len(c.Values))
		copy(vals, c.Values)
		out.Columns[i] = Column{Name: c.Name, Type: c.Type, Values: vals}
	}
	return out
}

// Row returns the cells of row i across all columns.
func (t Table) Row(i int) []Value {
	row := make([]Value, len(t.Columns))
	for j, c := range t.Columns {
		row[j] = c.Values[i]
	}
	return row
}

// Headers returns the column names in order.
func (t Table) Headers() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}
