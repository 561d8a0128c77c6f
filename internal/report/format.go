package report

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/salmonumbrella/csv2html-cli/internal/table"
)

// numericColumns are the counter columns normalized to a thousands-
// grouped fixed-decimal display form.
var numericColumns = []struct {
	name     string
	decimals int
}{
	{"Operations", 2},
	{"Parameters", 2},
	{"FPS", 0},
	{"FPS/W", 2},
}

var numberPrinter = message.NewPrinter(language.English)

// FormatNumericColumns rewrites the known numeric columns into grouped
// fixed-decimal form ("1234567.8" becomes "1,234,567.80"). Cells that do
// not parse as a number are blanked, matching the coerce-then-format
// behavior of the exports this report replaces. Columns absent from the
// table are skipped.
func FormatNumericColumns(t *table.Table) {
	for _, col := range numericColumns {
		if !t.HasColumn(col.name) {
			continue
		}
		for _, row := range t.Rows {
			row[col.name] = formatGrouped(row[col.name], col.decimals)
		}
	}
}

func formatGrouped(value string, decimals int) string {
	s := strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	if s == "" {
		return ""
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ""
	}
	return numberPrinter.Sprint(number.Decimal(v, number.Scale(decimals)))
}
