package report

import (
	"strings"

	"github.com/salmonumbrella/csv2html-cli/internal/table"
)

// NormalizeKey canonicalizes a join key: lower-cased, trimmed, internal
// whitespace runs collapsed to a single space.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// MetaIndex is a lookup table of auxiliary fields keyed by normalized
// join key. When the meta table carries duplicate keys the first
// occurrence wins, so repeated joins are deterministic.
type MetaIndex struct {
	fields []string
	byKey  map[string]table.Row
}

// NewMetaIndex builds a MetaIndex from the meta table. keyColumn must be
// present; every other column becomes a joinable field.
func NewMetaIndex(meta *table.Table, keyColumn string) (*MetaIndex, error) {
	if err := meta.RequireColumns(keyColumn); err != nil {
		return nil, err
	}

	idx := &MetaIndex{
		fields: meta.ColumnsWithout(keyColumn),
		byKey:  make(map[string]table.Row, len(meta.Rows)),
	}
	for _, row := range meta.Rows {
		key := NormalizeKey(row[keyColumn])
		if key == "" {
			continue
		}
		if _, exists := idx.byKey[key]; exists {
			continue // first match wins
		}
		idx.byKey[key] = row
	}
	return idx, nil
}

// Fields returns the meta columns a join contributes.
func (m *MetaIndex) Fields() []string {
	return m.fields
}

// Lookup returns the meta row for a raw join key value.
func (m *MetaIndex) Lookup(value string) (table.Row, bool) {
	row, ok := m.byKey[NormalizeKey(value)]
	return row, ok
}

// Augment left-joins the meta fields onto every row of t, matching on
// joinColumn. Unmatched rows keep their original fields; matched rows
// gain the meta columns, which are appended to the header when absent.
// Cells already holding a value are never overwritten, which also makes
// repeated joins with the same meta table idempotent. Returns the number
// of matched rows.
func (m *MetaIndex) Augment(t *table.Table, joinColumn string) (int, error) {
	if err := t.RequireColumns(joinColumn); err != nil {
		return 0, err
	}

	for _, field := range m.fields {
		if !t.HasColumn(field) {
			t.Columns = append(t.Columns, field)
			for _, row := range t.Rows {
				row[field] = ""
			}
		}
	}

	matched := 0
	for _, row := range t.Rows {
		metaRow, ok := m.Lookup(row[joinColumn])
		if !ok {
			continue
		}
		matched++
		for _, field := range m.fields {
			if row[field] == "" {
				row[field] = metaRow[field]
			}
		}
	}
	return matched, nil
}
