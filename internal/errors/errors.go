// Package errors defines the error taxonomy shared across the CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents an input validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// UserError represents an error caused by user input or configuration.
// Suggestion can provide a concrete fix for the user.
type UserError struct {
	Message    string
	Suggestion string
	Err        error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a UserError with a message and optional suggestion.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion}
}

// WrapUserError wraps an underlying error with a user-facing message and suggestion.
func WrapUserError(err error, message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion, Err: err}
}

// FileNotFoundError indicates an input file path that does not exist.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *FileNotFoundError) Unwrap() error {
	return e.Err
}

// ParseError indicates malformed tabular input. Line is 1-based and
// counts the header row; 0 means the line is unknown.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingColumnError indicates a required column is absent from a table
// header. Available lists the columns the header actually carries.
type MissingColumnError struct {
	Column    string
	Path      string
	Available []string
}

func (e *MissingColumnError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("column %q not found in %s", e.Column, e.Path)
	}
	return fmt.Sprintf("column %q not found", e.Column)
}

// Suggestion returns a user-facing hint listing the available columns.
func (e *MissingColumnError) Suggestion() string {
	if len(e.Available) == 0 {
		return ""
	}
	return fmt.Sprintf("Available columns: %s", strings.Join(e.Available, ", "))
}

// Type checkers
func IsFileNotFoundError(err error) bool {
	var e *FileNotFoundError
	return errors.As(err, &e)
}

func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}

func IsMissingColumnError(err error) bool {
	var e *MissingColumnError
	return errors.As(err, &e)
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}

// UserSuggestion returns a suggestion string if err carries one.
func UserSuggestion(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Suggestion
	}
	var mc *MissingColumnError
	if errors.As(err, &mc) {
		return mc.Suggestion()
	}
	return ""
}

// NewFileNotFound creates a FileNotFoundError for the given path.
func NewFileNotFound(path string, err error) error {
	return &FileNotFoundError{Path: path, Err: err}
}

// NewParseError wraps a parsing failure with its source location.
func NewParseError(path string, line int, err error) error {
	return &ParseError{Path: path, Line: line, Err: err}
}

// NewMissingColumn creates a MissingColumnError naming the header columns
// that were actually present.
func NewMissingColumn(column, path string, available []string) error {
	return &MissingColumnError{Column: column, Path: path, Available: available}
}
