// Package table provides the ordered tabular data model and loaders for
// CSV and XLSX inputs.
package table

import (
	clierrors "github.com/salmonumbrella/csv2html-cli/internal/errors"
)

// Row maps column names to cell values. Every row in a Table carries
// exactly the header's key set; short input rows are padded with "".
type Row map[string]string

// Table is an ordered sequence of rows plus the header that defines the
// column order. Path records the source file for error messages.
type Table struct {
	Path    string
	Columns []string
	Rows    []Row
}

// HasColumn reports whether name is part of the header.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// RequireColumns returns a MissingColumnError for the first named column
// absent from the header.
func (t *Table) RequireColumns(names ...string) error {
	for _, name := range names {
		if !t.HasColumn(name) {
			return clierrors.NewMissingColumn(name, t.Path, t.Columns)
		}
	}
	return nil
}

// Rename applies a header alias map, rekeying every row. A rename is
// skipped when the source column is absent or the target name is already
// taken by another column.
func (t *Table) Rename(aliases map[string]string) {
	for i, col := range t.Columns {
		alias, ok := aliases[col]
		if !ok || alias == col || t.HasColumn(alias) {
			continue
		}
		t.Columns[i] = alias
		for _, row := range t.Rows {
			row[alias] = row[col]
			delete(row, col)
		}
	}
}

// ColumnsWithout returns the column order with the named columns removed.
// Matching is exact.
func (t *Table) ColumnsWithout(names ...string) []string {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	kept := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if !drop[c] {
			kept = append(kept, c)
		}
	}
	return kept
}
