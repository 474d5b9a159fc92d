// Package log provides context-aware diagnostic logging for mgit.
// Diagnostics go to stderr; primary report output goes through the
// output package instead.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

type ctxKey struct{}

// Logger writes diagnostics and, in verbose mode, echoes external
// commands as they run.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a new logger.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output. Suppressed in quiet mode.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output. Suppressed in quiet mode.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Command logs an external command execution and returns a function
// that logs the elapsed time once the command has finished.
// Only prints when verbose mode is enabled.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.verbose || l.quiet {
		return func(time.Duration) {}
	}
	if dir != "" {
		fmt.Fprintf(l.out, "[%s] $ %s %s\n", dir, name, strings.Join(args, " "))
	} else {
		fmt.Fprintf(l.out, "$ %s %s\n", name, strings.Join(args, " "))
	}
	return func(elapsed time.Duration) {
		fmt.Fprintf(l.out, "  took %s\n", elapsed.Round(time.Millisecond))
	}
}

// Verbose returns true if verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
