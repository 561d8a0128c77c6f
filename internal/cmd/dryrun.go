package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/salmonumbrella/csv2html-cli/internal/render"
	"github.com/salmonumbrella/csv2html-cli/internal/report"
)

// DryRunPrinter helps format dry-run output consistently.
type DryRunPrinter struct {
	w io.Writer
}

// NewDryRunPrinter creates a new DryRunPrinter that writes to the given writer.
func NewDryRunPrinter(w io.Writer) *DryRunPrinter {
	return &DryRunPrinter{w: w}
}

// Header prints the header line indicating the action that would be taken.
// Example: [DRY-RUN] Would render zoo.csv
func (p *DryRunPrinter) Header(action, target string) {
	_, _ = fmt.Fprintf(p.w, "[DRY-RUN] Would %s %s\n", action, target)
}

// Field prints a single field with its value.
// Example:   Output: zoo.html
func (p *DryRunPrinter) Field(name, value string) {
	_, _ = fmt.Fprintf(p.w, "  %s: %s\n", name, value)
}

// Section prints a section header.
func (p *DryRunPrinter) Section(title string) {
	_, _ = fmt.Fprintf(p.w, "\n%s\n", title)
}

// Footer prints the footer message indicating no changes were made.
func (p *DryRunPrinter) Footer() {
	_, _ = fmt.Fprintf(p.w, "\n[DRY-RUN] No changes made.\n")
}

// printRenderDryRun previews the conversion plan on stderr.
func printRenderDryRun(ctx context.Context, csv, meta, out string, opts render.Options, groups []report.Group, result *loadResult) {
	p := NewDryRunPrinter(stderrFromContext(ctx))
	p.Header("render", csv)

	p.Field("Output", out)
	p.Field("Title", opts.Title)
	p.Field("Group by", opts.GroupColumn)
	if meta != "" {
		p.Field("Meta table", fmt.Sprintf("%s (%d of %d rows matched)", meta, result.matched, len(result.table.Rows)))
	} else {
		p.Field("Meta table", "(none)")
	}

	p.Section("Columns:")
	for _, col := range result.table.Columns {
		switch {
		case col == opts.GroupColumn:
			p.Field(col, "section heading")
		case contains(opts.HideColumns, col):
			p.Field(col, "hidden")
		case opts.Links.Contains(col):
			p.Field(col, fmt.Sprintf("link (label %q)", opts.Links.Label(col)))
		default:
			p.Field(col, "text")
		}
	}

	p.Section("Sections:")
	for _, g := range groups {
		key := g.Key
		if key == "" {
			key = "(empty)"
		}
		p.Field(key, fmt.Sprintf("%d rows", len(g.Rows)))
	}

	p.Footer()
}

// contains checks if a string slice contains a value
func contains(slice []string, value string) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}
