// Package output renders command results in text, JSON, NDJSON, table,
// and YAML formats, with optional jq and JSONPath filtering.
package output

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	clierrors "github.com/salmonumbrella/csv2html-cli/internal/errors"
)

// Format represents the output format type.
type Format string

const (
	// FormatText is human-readable key-value format (default).
	FormatText Format = "text"
	// FormatJSON is pretty-printed JSON format.
	FormatJSON Format = "json"
	// FormatNDJSON is newline-delimited JSON format.
	FormatNDJSON Format = "ndjson"
	// FormatTable is tabular format for lists.
	FormatTable Format = "table"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format type.
// Empty string defaults to FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatNDJSON, "jsonl":
		return FormatNDJSON, nil
	case FormatTable:
		return FormatTable, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", errors.New("invalid --output format (expected text|json|ndjson|jsonl|table|yaml)")
	}
}

// Tabular is implemented by results that know how to lay themselves out
// as a table.
type Tabular interface {
	Table() Table
}

// Printer handles output formatting across different formats.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a new Printer that writes to w in the given format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// Print outputs data in the configured format. A --jsonpath expression
// from context is applied first; --query (jq) is applied by the JSON and
// text formatters.
func (p *Printer) Print(ctx context.Context, data interface{}) error {
	if data == nil {
		return nil
	}

	if path := JSONPathFromContext(ctx); path != "" {
		if p.format == FormatTable {
			return clierrors.NewUserError(
				"--jsonpath is not supported with table output",
				"Use --output json|ndjson|jsonl|yaml|text instead",
			)
		}
		extracted, err := applyJSONPath(data, path)
		if err != nil {
			return err
		}
		data = extracted
	}

	switch p.format {
	case FormatJSON:
		return p.printJSON(ctx, data)
	case FormatNDJSON:
		return p.printNDJSON(ctx, data)
	case FormatYAML:
		return p.printYAML(data)
	case FormatTable:
		return p.printTable(data)
	case FormatText:
		return p.printText(ctx, data)
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}

// printYAML outputs data as YAML.
func (p *Printer) printYAML(data interface{}) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}

// printTable renders Tabular data through tabwriter.
func (p *Printer) printTable(data interface{}) error {
	var tbl Table
	switch v := data.(type) {
	case Tabular:
		tbl = v.Table()
	case Table:
		tbl = v
	case *Table:
		tbl = *v
	default:
		return clierrors.NewUserError(
			"table output is not supported for this result",
			"Use --output json|yaml|text instead",
		)
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(tbl.Headers, "\t")); err != nil {
		return err
	}
	for _, row := range tbl.Rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// printText outputs data as human-readable text. If a --query filter is
// present it is applied first and the filtered result rendered. Tabular
// data renders as a table; everything else as sorted key-value pairs.
func (p *Printer) printText(ctx context.Context, data interface{}) error {
	if query := QueryFromContext(ctx); query != "" {
		results, err := runQueryRaw(query, data)
		if err != nil {
			return err
		}
		switch len(results) {
		case 0:
			return nil
		case 1:
			data = results[0]
		default:
			data = results
		}
	}

	if tab, ok := data.(Tabular); ok {
		return p.printTable(tab)
	}

	normalized, err := normalizeToInterface(data)
	if err != nil {
		return err
	}
	return p.printTextValue(normalized, "")
}

func (p *Printer) printTextValue(v interface{}, indent string) error {
	switch val := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := val[k]
			switch child.(type) {
			case map[string]interface{}, []interface{}:
				if _, err := fmt.Fprintf(p.w, "%s%s:\n", indent, k); err != nil {
					return err
				}
				if err := p.printTextValue(child, indent+"  "); err != nil {
					return err
				}
			default:
				if _, err := fmt.Fprintf(p.w, "%s%s: %s\n", indent, k, formatScalar(child)); err != nil {
					return err
				}
			}
		}
		return nil
	case []interface{}:
		for _, item := range val {
			switch item.(type) {
			case map[string]interface{}, []interface{}:
				if _, err := fmt.Fprintf(p.w, "%s-\n", indent); err != nil {
					return err
				}
				if err := p.printTextValue(item, indent+"  "); err != nil {
					return err
				}
			default:
				if _, err := fmt.Fprintf(p.w, "%s- %s\n", indent, formatScalar(item)); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		_, err := fmt.Fprintf(p.w, "%s%s\n", indent, formatScalar(v))
		return err
	}
}

func formatScalar(v interface{}) string {
	if v == nil {
		return "<nil>"
	}
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", v)
}

// normalizeToInterface converts data to plain maps/slices via a JSON
// round-trip so jq, JSONPath, and the text formatter share one shape.
func normalizeToInterface(data interface{}) (interface{}, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var normalized interface{}
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}
