package report

import (
	"regexp"
	"strings"

	"github.com/salmonumbrella/csv2html-cli/internal/table"
)

// Source sheets order their sections with a numeric prefix
// ("1. Image Classification"); the prefix is an authoring artifact and
// never part of the heading.
var orderPrefixRE = regexp.MustCompile(`^\d+\.\s*`)

// StripOrderPrefix removes a leading "N. " ordering prefix and
// surrounding whitespace from a grouping value.
func StripOrderPrefix(s string) string {
	return strings.TrimSpace(orderPrefixRE.ReplaceAllString(strings.TrimSpace(s), ""))
}

// CleanGroupColumn rewrites the grouping column in place so that
// "1. Image Classification" and "Image Classification" land in the same
// group. A no-op when the column is absent.
func CleanGroupColumn(t *table.Table, column string) {
	if !t.HasColumn(column) {
		return
	}
	for _, row := range t.Rows {
		row[column] = StripOrderPrefix(row[column])
	}
}

// Group is a grouping-column value plus the rows sharing it, in input
// order.
type Group struct {
	Key  string      `json:"key" yaml:"key"`
	Rows []table.Row `json:"rows" yaml:"rows"`
}

// GroupBy partitions the table's rows by the value of column. Groups are
// ordered by first appearance of the key; rows keep their input order
// inside each group.
func GroupBy(t *table.Table, column string) ([]Group, error) {
	if err := t.RequireColumns(column); err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var groups []Group
	for _, row := range t.Rows {
		key := row[column]
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups, nil
}
