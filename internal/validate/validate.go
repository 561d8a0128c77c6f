// Package validate provides input validation helpers for flags and config.
package validate

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// NonEmpty validates that a required string field is not empty.
func NonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s: cannot be empty", field)
	}
	return nil
}

// Delimiter validates that the value is a single rune usable as a CSV
// field separator. Newlines and the quote character are rejected because
// encoding/csv reserves them.
func Delimiter(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s: cannot be empty", field)
	}
	if utf8.RuneCountInString(value) != 1 {
		return fmt.Errorf("%s: must be a single character, got %q", field, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError {
		return fmt.Errorf("%s: not valid UTF-8", field)
	}
	if r == '\n' || r == '\r' || r == '"' {
		return fmt.Errorf("%s: %q is reserved by the CSV format", field, value)
	}
	return nil
}

// Columns validates a comma-separated column list: no empty names after
// trimming, no duplicates (case-insensitive).
func Columns(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	seen := make(map[string]bool)
	for _, raw := range strings.Split(value, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			return fmt.Errorf("%s: contains an empty column name", field)
		}
		lower := strings.ToLower(name)
		if seen[lower] {
			return fmt.Errorf("%s: duplicate column %q", field, name)
		}
		seen[lower] = true
	}
	return nil
}

// HTMLPath validates that an output path looks like an HTML file.
// A bare path with no extension is allowed; a mismatched extension is not.
func HTMLPath(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s: cannot be empty", field)
	}
	// filepath.Ext only looks at the final path element, so dots in
	// directory components ("/home/user.name/report") are not extensions.
	ext := strings.ToLower(filepath.Ext(value))
	if ext != "" && ext != ".html" && ext != ".htm" {
		return fmt.Errorf("%s: expected an .html output path, got %q", field, value)
	}
	return nil
}
