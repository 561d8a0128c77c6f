package cmd

import (
	"log/slog"
	"strings"

	clierrors "github.com/salmonumbrella/csv2html-cli/internal/errors"
	"github.com/salmonumbrella/csv2html-cli/internal/report"
	"github.com/salmonumbrella/csv2html-cli/internal/table"
	"github.com/salmonumbrella/csv2html-cli/internal/validate"
)

// pipelineParams carries the resolved loader/joiner settings shared by
// render and inspect.
type pipelineParams struct {
	csvPath    string
	metaPath   string
	delimiter  rune
	groupBy    string
	joinColumn string
}

// loadResult is the loaded, normalized, optionally meta-joined table.
type loadResult struct {
	table   *table.Table
	joined  bool
	matched int
}

// resolveDelimiter validates the flag value and returns it as a rune.
func resolveDelimiter(value string) (rune, error) {
	if err := validate.Delimiter("delimiter", value); err != nil {
		return 0, clierrors.NewUserError(err.Error(), "Use a single character such as , or ;")
	}
	return []rune(value)[0], nil
}

// parseColumnList splits a comma-separated column flag into names.
func parseColumnList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var cols []string
	for _, raw := range strings.Split(value, ",") {
		if name := strings.TrimSpace(raw); name != "" {
			cols = append(cols, name)
		}
	}
	return cols
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// loadPipeline reads the primary table, normalizes legacy headers, and
// joins the meta table when a meta path is set.
func loadPipeline(params pipelineParams) (*loadResult, error) {
	primary, err := table.ReadFile(params.csvPath, table.ReadOptions{Delimiter: params.delimiter})
	if err != nil {
		return nil, err
	}
	report.NormalizeColumns(primary)
	report.CleanGroupColumn(primary, params.groupBy)
	slog.Debug("loaded primary table",
		"path", params.csvPath, "columns", len(primary.Columns), "rows", len(primary.Rows))

	result := &loadResult{table: primary}
	if params.metaPath != "" {
		meta, err := table.ReadFile(params.metaPath, table.ReadOptions{Delimiter: params.delimiter})
		if err != nil {
			return nil, err
		}
		report.NormalizeColumns(meta)

		idx, err := report.NewMetaIndex(meta, params.joinColumn)
		if err != nil {
			return nil, err
		}
		matched, err := idx.Augment(primary, params.joinColumn)
		if err != nil {
			return nil, err
		}
		slog.Debug("joined meta table",
			"path", params.metaPath, "fields", len(idx.Fields()), "matched", matched)

		result.joined = true
		result.matched = matched
	}

	// Display normalization runs after the join so meta-supplied counter
	// columns are formatted too.
	report.DeriveMetrics(primary)
	report.FormatNumericColumns(primary)
	return result, nil
}

// requireCSVPath turns a missing --csv value into a user error.
func requireCSVPath(path string) error {
	if path == "" {
		return clierrors.NewUserError(
			"--csv is required",
			"Pass --csv <path> or set csv_path in the config file (c2h config set csv_path data.csv)",
		)
	}
	return nil
}
