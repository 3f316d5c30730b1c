package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log = New(os.Stdout, "info", "json")

// New builds a zerolog logger writing to w. Format "console" gives
// human-readable output, anything else is JSON.
func New(w io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Init replaces the process logger.
func Init(level, format string) {
	log = New(os.Stdout, level, format)
}

// SetLogger replaces the process logger with l.
func SetLogger(l zerolog.Logger) {
	log = l
}

// Get returns the process logger.
func Get() *zerolog.Logger {
	return &log
}

// WithContext stores l in ctx for FromContext.
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// FromContext returns the request-scoped logger stored in ctx, falling back
// to the process logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log
}

func Debug(msg string, args ...any) {
	write(log.Debug(), msg, args)
}

func Info(msg string, args ...any) {
	write(log.Info(), msg, args)
}

func Warn(msg string, args ...any) {
	write(log.Warn(), msg, args)
}

func Error(msg string, args ...any) {
	write(log.Error(), msg, args)
}

// Fatal logs at fatal level and exits the process.
func Fatal(msg string, args ...any) {
	write(log.Fatal(), msg, args)
}

func write(e *zerolog.Event, msg string, args []any) {
	if e == nil {
		return
	}
	Fields(e, args...).Msg(msg)
}

// Fields attaches alternating key/value pairs to e. A bare error is attached
// with Err; a value without a key is stored under "argN".
func Fields(e *zerolog.Event, args ...any) *zerolog.Event {
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case error:
			e = e.Err(v)
		case string:
			if i+1 >= len(args) {
				e = e.Str(fmt.Sprintf("arg%d", i), v)
				continue
			}
			if err, ok := args[i+1].(error); ok {
				e = e.AnErr(v, err)
			} else {
				e = e.Interface(v, args[i+1])
			}
			i++
		default:
			e = e.Interface(fmt.Sprintf("arg%d", i), v)
		}
	}
	return e
}
