package cmd

import (
	"context"
	"errors"
	"testing"

	clierrors "github.com/salmonumbrella/csv2html-cli/internal/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"canceled", context.Canceled, ExitCanceled},
		{"user", clierrors.NewUserError("bad", "hint"), ExitUser},
		{"validation", &clierrors.ValidationError{Field: "x", Message: "bad"}, ExitUser},
		{"not_found", clierrors.NewFileNotFound("zoo.csv", errors.New("stat")), ExitNotFound},
		{"parse", clierrors.NewParseError("zoo.csv", 3, errors.New("bare quote")), ExitUser},
		{"missing_column", clierrors.NewMissingColumn("Task", "zoo.csv", []string{"Name"}), ExitUser},
		{"unknown", errors.New("boom"), ExitSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Fatalf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitCode_WrappedNotFound(t *testing.T) {
	err := clierrors.WrapUserError(clierrors.NewFileNotFound("zoo.csv", nil), "load failed", "")
	// Classification follows the underlying cause, not the wrapper.
	if got := ExitCode(err); got != ExitNotFound {
		t.Fatalf("ExitCode() = %d, want %d", got, ExitNotFound)
	}
}
