package cmd

import (
	"context"
	"fmt"

	clierrors "github.com/salmonumbrella/csv2html-cli/internal/errors"
)

// printCommandError writes the error to stderr, followed by a hint line
// when the error carries a suggestion.
func printCommandError(ctx context.Context, err error) {
	if err == nil {
		return
	}

	stderr := stderrFromContext(ctx)
	_, _ = fmt.Fprintln(stderr, "Error:", err)
	if suggestion := clierrors.UserSuggestion(err); suggestion != "" {
		_, _ = fmt.Fprintf(stderr, "Hint: %s\n", suggestion)
	}
}
