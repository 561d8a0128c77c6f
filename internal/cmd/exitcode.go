package cmd

import (
	"context"
	"errors"

	clierrors "github.com/salmonumbrella/csv2html-cli/internal/errors"
)

const (
	ExitOK       = 0
	ExitSystem   = 1
	ExitUser     = 2
	ExitNotFound = 4
	ExitCanceled = 130
)

// ExitCode maps a command error to a stable process exit code for automation.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}

	if clierrors.IsFileNotFoundError(err) {
		return ExitNotFound
	}
	// Malformed input and missing columns are user-fixable problems.
	if clierrors.IsParseError(err) || clierrors.IsMissingColumnError(err) {
		return ExitUser
	}
	if clierrors.IsValidationError(err) || clierrors.IsUserError(err) {
		return ExitUser
	}

	return ExitSystem
}
