// Package report turns a loaded table into ordered, meta-enriched groups
// ready for rendering.
package report

import (
	"strings"

	"github.com/salmonumbrella/csv2html-cli/internal/table"
)

// columnAliases maps legacy or misspelled export headers onto the
// canonical report columns.
var columnAliases = map[string]string{
	"Raw Accu":               "Raw Accuracy",
	"Raw Accuracy(20250604)": "Raw Accuracy",
	"NPU Accracy":            "NPU Accuracy",
	"3npus_fps":              "FPS",
	"3npus_FPS/W":            "FPS/W",
	"reference":              "Source",
	"Reference":              "Source",
	"dxnn":                   "Compiled",
	"DXNN":                   "Compiled",
	"Model ID":               "Name",
	"filename":               "Name",
	"InputResolution":        "Input Resolution",
	"Input_Resolution":       "Input Resolution",
	"Ops":                    "Operations",
	"Params":                 "Parameters",
}

// NormalizeColumns rewrites known header variants to their canonical
// names. Safe to call on any table; unknown columns pass through.
func NormalizeColumns(t *table.Table) {
	t.Rename(columnAliases)
}

// LinkSet identifies the columns whose cell values are URLs rendered as
// short anchor labels. Matching is case-insensitive.
type LinkSet struct {
	labels map[string]string // lowered column name -> anchor label
}

// NewLinkSet builds a LinkSet from column names. The anchor label is the
// lower-cased column name.
func NewLinkSet(columns []string) LinkSet {
	labels := make(map[string]string, len(columns))
	for _, c := range columns {
		name := strings.TrimSpace(c)
		if name == "" {
			continue
		}
		labels[strings.ToLower(name)] = strings.ToLower(name)
	}
	return LinkSet{labels: labels}
}

// Contains reports whether the column is in the set.
func (s LinkSet) Contains(column string) bool {
	_, ok := s.labels[strings.ToLower(column)]
	return ok
}

// Label returns the anchor text for the column, or "" if the column is
// not in the set.
func (s LinkSet) Label(column string) string {
	return s.labels[strings.ToLower(column)]
}

// Len returns the number of columns in the set.
func (s LinkSet) Len() int {
	return len(s.labels)
}
