// Package iocontext carries stdout/stderr writers through context so
// commands can be exercised against buffers in tests.
package iocontext

import (
	"context"
	"io"
)

type (
	stdoutKey struct{}
	stderrKey struct{}
)

// WithIO injects stdout and stderr writers into context.
func WithIO(ctx context.Context, stdout, stderr io.Writer) context.Context {
	ctx = context.WithValue(ctx, stdoutKey{}, stdout)
	return context.WithValue(ctx, stderrKey{}, stderr)
}

// StdoutOrDefault returns the stdout writer from context, or def when unset.
func StdoutOrDefault(ctx context.Context, def io.Writer) io.Writer {
	if w, ok := ctx.Value(stdoutKey{}).(io.Writer); ok && w != nil {
		return w
	}
	return def
}

// StderrOrDefault returns the stderr writer from context, or def when unset.
func StderrOrDefault(ctx context.Context, def io.Writer) io.Writer {
	if w, ok := ctx.Value(stderrKey{}).(io.Writer); ok && w != nil {
		return w
	}
	return def
}
