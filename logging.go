package vtengine

import (
	"context"
	"fmt"
	"log/slog"
)

// logFunc is the minimal logging seam used internally by Parser and Grid.
// It is a plain function value rather than a *slog.Logger field so a noop
// logger costs nothing on the hot path, and so constructing an Engine never
// requires configuring a logging subsystem.
//
// Grounded in bdwalton-gosh/logging, which wraps slog with a discard
// handler for the "no logfile configured" case. Here the same idea is
// expressed per-instance instead of via slog.SetDefault, because the
// engine must be constructible many times in one process — including
// concurrently in tests — without mutating shared global logging state.
type logFunc func(format string, args ...any)

func noopLog(format string, args ...any) {}

// slogAdapter returns a logFunc that writes through l at the given level.
func slogAdapter(l *slog.Logger, level slog.Level) logFunc {
	if l == nil {
		return noopLog
	}
	return func(format string, args ...any) {
		l.Log(context.Background(), level, fmt.Sprintf(format, args...))
	}
}
