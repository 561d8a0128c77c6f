package validate

import (
	"strings"
	"testing"
)

func TestNonEmpty(t *testing.T) {
	if err := NonEmpty("group_by", "Task"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := NonEmpty("group_by", "  "); err == nil {
		t.Error("expected error for blank value")
	}
}

func TestDelimiter(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{name: "comma", value: ","},
		{name: "semicolon", value: ";"},
		{name: "tab", value: "\t"},
		{name: "multibyte rune", value: "§"},
		{name: "empty", value: "", wantErr: "cannot be empty"},
		{name: "two characters", value: ",,", wantErr: "single character"},
		{name: "newline", value: "\n", wantErr: "reserved"},
		{name: "quote", value: `"`, wantErr: "reserved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Delimiter("delimiter", tt.value)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{name: "empty is allowed", value: ""},
		{name: "single", value: "onnx"},
		{name: "multiple", value: "Source, Compiled, onnx, json"},
		{name: "empty entry", value: "Source,,json", wantErr: "empty column name"},
		{name: "duplicate case-insensitive", value: "onnx,ONNX", wantErr: "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Columns("link_columns", tt.value)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestHTMLPath(t *testing.T) {
	if err := HTMLPath("out", "report.html"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := HTMLPath("out", "report.htm"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := HTMLPath("out", "report"); err != nil {
		t.Errorf("extension-less path should be allowed: %v", err)
	}
	for _, path := range []string{"./report", "/home/user.name/report", "out.dir/report"} {
		if err := HTMLPath("out", path); err != nil {
			t.Errorf("dot in a directory component is not an extension: %q: %v", path, err)
		}
	}
	if err := HTMLPath("out", "/home/user.name/report.csv"); err == nil {
		t.Error("expected error for non-HTML extension in a dotted directory")
	}
	if err := HTMLPath("out", "report.csv"); err == nil {
		t.Error("expected error for non-HTML extension")
	}
	if err := HTMLPath("out", ""); err == nil {
		t.Error("expected error for empty path")
	}
}
