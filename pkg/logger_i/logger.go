package logger_i

import (
	"io"
	"log/slog"
	"os"

	"github.com/akolanti/DocQA/internal/config"
)

type Logger struct {
	inner *slog.Logger
}

func Init(service string) {
	initWithWriter(service, os.Stdout)
}

// InitForStdio routes logs to stderr. The mcp binary owns stdout for the
// wire protocol, so anything printed there corrupts the session.
func InitForStdio(service string) {
	initWithWriter(service, os.Stderr)
}

func initWithWriter(service string, w io.Writer) {
	options := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}

	var handler slog.Handler
	if config.IS_PROD {
		options.Level = config.LOG_LEVEL_PROD
		handler = slog.NewJSONHandler(w, options)
	} else {
		handler = slog.NewTextHandler(w, options)
	}
	slog.SetDefault(slog.New(handler).With("service", service))
}

func NewLogger(section string) *Logger {
	return &Logger{
		inner: slog.Default().With("component", section),
	}
}

func (l *Logger) Info(msg string, args ...any) {
	l.inner.Info(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.inner.Error(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.inner.Warn(msg, args...)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.inner.Debug(msg, args...)
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		inner: l.inner.With(args...),
	}
}
