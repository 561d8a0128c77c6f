package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

type fakeSummary struct {
	Name   string `json:"name"`
	Groups int    `json:"groups"`
}

type fakeTabular struct {
	headers []string
	rows    [][]string
}

func (f fakeTabular) Table() Table {
	return Table{Headers: f.headers, Rows: f.rows}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "text", want: FormatText},
		{in: "json", want: FormatJSON},
		{in: "JSON", want: FormatJSON},
		{in: "ndjson", want: FormatNDJSON},
		{in: "jsonl", want: FormatNDJSON},
		{in: "table", want: FormatTable},
		{in: "yaml", want: FormatYAML},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)

	if err := p.Print(context.Background(), fakeSummary{Name: "zoo.csv", Groups: 3}); err != nil {
		t.Fatalf("Print: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["name"] != "zoo.csv" {
		t.Errorf("name = %v", decoded["name"])
	}
}

func TestPrintJSONWithQuery(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)

	ctx := WithQuery(context.Background(), ".groups")
	if err := p.Print(ctx, fakeSummary{Name: "zoo.csv", Groups: 3}); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "3" {
		t.Errorf("query output = %q, want 3", got)
	}
}

func TestPrintJSONWithInvalidQuery(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)

	ctx := WithQuery(context.Background(), ".[((")
	if err := p.Print(ctx, fakeSummary{}); err == nil {
		t.Error("expected error for invalid jq expression")
	}
}

func TestPrintNDJSONSlice(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatNDJSON)

	data := []fakeSummary{{Name: "a", Groups: 1}, {Name: "b", Groups: 2}}
	if err := p.Print(context.Background(), data); err != nil {
		t.Fatalf("Print: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	for _, line := range lines {
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Errorf("line %q is not valid JSON: %v", line, err)
		}
	}
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatYAML)

	if err := p.Print(context.Background(), map[string]int{"groups": 2}); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if !strings.Contains(buf.String(), "groups: 2") {
		t.Errorf("unexpected YAML output: %q", buf.String())
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable)

	data := fakeTabular{
		headers: []string{"GROUP", "ROWS"},
		rows:    [][]string{{"Classification", "12"}, {"Detection", "7"}},
	}
	if err := p.Print(context.Background(), data); err != nil {
		t.Fatalf("Print: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"GROUP", "ROWS", "Classification", "Detection"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q: %q", want, out)
		}
	}
}

func TestPrintTableRejectsNonTabular(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable)

	if err := p.Print(context.Background(), fakeSummary{}); err == nil {
		t.Error("expected error for non-tabular data with table format")
	}
}

func TestPrintTextKeyValue(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatText)

	if err := p.Print(context.Background(), fakeSummary{Name: "zoo.csv", Groups: 3}); err != nil {
		t.Fatalf("Print: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "name: zoo.csv") {
		t.Errorf("text output missing name, got %q", out)
	}
	if !strings.Contains(out, "groups: 3") {
		t.Errorf("text output should render whole numbers without decimals, got %q", out)
	}
}

func TestPrintTextPrefersTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatText)

	data := fakeTabular{headers: []string{"KEY"}, rows: [][]string{{"A"}}}
	if err := p.Print(context.Background(), data); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if !strings.Contains(buf.String(), "KEY") {
		t.Errorf("tabular data should render as a table in text mode, got %q", buf.String())
	}
}

func TestJSONPathExtraction(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)

	data := map[string]interface{}{
		"groups": []map[string]interface{}{
			{"key": "Classification"},
			{"key": "Detection"},
		},
	}

	ctx := WithJSONPath(context.Background(), ".groups[1].key")
	if err := p.Print(ctx, data); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `"Detection"` {
		t.Errorf("jsonpath output = %q", got)
	}
}

func TestJSONPathRejectedForTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable)

	ctx := WithJSONPath(context.Background(), "$.groups")
	err := p.Print(ctx, fakeTabular{headers: []string{"A"}})
	if err == nil {
		t.Error("expected error combining --jsonpath with table output")
	}
}

func TestNormalizeJSONPath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"$.a.b", "$.a.b"},
		{".a.b", "$.a.b"},
		{"[0]", "$[0]"},
		{"a.b", "$.a.b"},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := normalizeJSONPath(tt.in); got != tt.want {
			t.Errorf("normalizeJSONPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
