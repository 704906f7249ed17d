package logger

import (
	"context"
	"log/slog"
	"runtime"
	"slices"
	"time"
)

// SlogLogger implements the [Logger] interface by delegating to a
// [slog.Logger]. Calendar dates passed as values, times at midnight UTC,
// are written in the [time.DateOnly] layout. Trace records are written at
// slog level Debug-4; use [ReplaceLevelAttr] to render them as "TRACE":
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//		Level:       slog.Level(logger.LevelTrace),
//		ReplaceAttr: logger.ReplaceLevelAttr,
//	})
//	l := logger.NewSlogLogger(context.Background(), slog.New(handler))
type SlogLogger struct {
	ctx    context.Context
	logger *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

// NewSlogLogger returns a new [SlogLogger].
// It will panic if the logger is nil.
func NewSlogLogger(ctx context.Context, logger *slog.Logger) *SlogLogger {
	if logger == nil {
		panic("nil logger")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &SlogLogger{
		ctx:    ctx,
		logger: logger,
	}
}

// With returns a SlogLogger that includes the given attributes in every
// record, e.g. the pattern a component works on.
func (l *SlogLogger) With(args ...any) *SlogLogger {
	return &SlogLogger{
		ctx:    l.ctx,
		logger: l.logger.With(calendarDates(args)...),
	}
}

// Trace logs at the trace level.
func (l *SlogLogger) Trace(msg string, args ...any) {
	l.log(slog.Level(LevelTrace), msg, args...)
}

// Debug logs at the debug level.
func (l *SlogLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

// Info logs at the info level.
func (l *SlogLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

// Warn logs at the warn level.
func (l *SlogLogger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

// Error logs at the error level.
func (l *SlogLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

// log builds the record with the source position of the Logger method's
// caller, so that AddSource handlers point at the recurrence code.
func (l *SlogLogger) log(level slog.Level, msg string, args ...any) {
	if !l.logger.Enabled(l.ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // Callers, log, Trace..Error

	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(calendarDates(args)...)
	_ = l.logger.Handler().Handle(l.ctx, r)
}

// calendarDates returns args with every calendar date replaced by its
// DateOnly text. args is copied before the first replacement.
func calendarDates(args []any) []any {
	cloned := false
	for i, arg := range args {
		t, ok := arg.(time.Time)
		if !ok || !isCalendarDate(t) {
			continue
		}
		if !cloned {
			args, cloned = slices.Clone(args), true
		}
		args[i] = t.Format(time.DateOnly)
	}
	return args
}

func isCalendarDate(t time.Time) bool {
	return t.Location() == time.UTC && t.Equal(t.Truncate(24*time.Hour))
}

// ReplaceLevelAttr is a [slog.HandlerOptions] ReplaceAttr function naming
// the trace level.
func ReplaceLevelAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if level, ok := a.Value.Any().(slog.Level); ok &&
			level == slog.Level(LevelTrace) {
			a.Value = slog.StringValue(LevelTrace.String())
		}
	}
	return a
}
