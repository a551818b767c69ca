package cossim

import "fmt"

// Column is a single named sequence of string values, addressable by
// row index. Implementations may back this with any storage; cossim
// only ever reads it.
type Column interface {
	// Len returns the number of rows in the column.
	Len() int
	// StringAt returns the value at row i, or false if i is out of range.
	StringAt(i int) (string, bool)
}

// Table is a minimal columnar host abstraction: the one collaborator
// AwesomeCossim needs from a dataframe. Any host format — a real
// dataframe library, a CSV reader, a database cursor materialized into
// memory — can satisfy it by wrapping its own column type, or a caller
// can use the bundled ColumnTable directly.
type Table interface {
	// Column returns the named column, or false if it does not exist.
	Column(name string) (Column, bool)
}

// stringColumn is a Column backed by a plain Go slice.
type stringColumn []string

func (c stringColumn) Len() int { return len(c) }

func (c stringColumn) StringAt(i int) (string, bool) {
	if i < 0 || i >= len(c) {
		return "", false
	}

	return c[i], true
}

// ColumnTable is a concrete, in-memory Table, usable standalone without
// any external dataframe dependency — the same role katalvlaran/lvlath's
// core.Graph plays for its algorithm packages: one concrete type behind
// a narrow interface boundary, so the rest of the package never depends
// on a specific host format.
type ColumnTable struct {
	columns map[string]stringColumn
}

// NewColumnTable builds a ColumnTable from a map of column name to
// string values.
func NewColumnTable(columns map[string][]string) *ColumnTable {
	t := &ColumnTable{columns: make(map[string]stringColumn, len(columns))}
	for name, values := range columns {
		t.columns[name] = stringColumn(values)
	}

	return t
}

// Column implements Table.
func (t *ColumnTable) Column(name string) (Column, bool) {
	c, ok := t.columns[name]
	if !ok {
		return nil, false
	}

	return c, true
}

// columnStrings reads every value out of a named column of tbl, in row
// order, returning ErrSchema if the column is missing or any row read
// fails (which should not happen for a well-formed Table, but is checked
// rather than trusted, since Table is an external collaborator).
func columnStrings(tbl Table, name string) ([]string, error) {
	col, ok := tbl.Column(name)
	if !ok {
		return nil, fmt.Errorf("cossim: column %q not found: %w", name, ErrSchema)
	}

	out := make([]string, col.Len())
	for i := range out {
		v, ok := col.StringAt(i)
		if !ok {
			return nil, fmt.Errorf("cossim: column %q row %d unreadable: %w", name, i, ErrSchema)
		}
		out[i] = v
	}

	return out, nil
}
