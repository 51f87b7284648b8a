package log

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type AttrOption func(l zerolog.Context) zerolog.Context

// Scope names the component that emits the log entry.
func Scope(s string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("s", s)
	}
}

// Operation names the list operation in progress.
func Operation(op string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("op", op)
	}
}

// Size attaches a list or input size.
func Size(n int) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Int("size", n)
	}
}

// Key attaches the document field path used for ordering.
func Key(path string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		if path == "" {
			return l
		}

		return l.Str("key", path)
	}
}

// WithAttrs returns a copy of ctx whose logger carries opts.
func WithAttrs(ctx context.Context, opts ...AttrOption) context.Context {
	l := zerolog.Ctx(ctx).With()
	for _, opt := range opts {
		l = opt(l)
	}

	return l.Logger().WithContext(ctx)
}

// Logger is a thin message-oriented facade over zerolog.
type Logger struct {
	zl *zerolog.Logger
}

// Ctx returns the logger attached to ctx or the fallback logger.
func Ctx(ctx context.Context) *Logger {
	return &Logger{zl: zerolog.Ctx(ctx)}
}

func (l *Logger) Trace(msg string) {
	l.zl.Trace().Timestamp().Msg(msg)
}

func (l *Logger) Tracef(msg string, args ...any) {
	l.zl.Trace().Timestamp().Msgf(msg, args...)
}

func (l *Logger) Debug(msg string) {
	l.zl.Debug().Timestamp().Msg(msg)
}

func (l *Logger) Debugf(msg string, args ...any) {
	l.zl.Debug().Timestamp().Msgf(msg, args...)
}

func (l *Logger) Info(msg string) {
	l.zl.Info().Timestamp().Msg(msg)
}

func (l *Logger) Infof(msg string, args ...any) {
	l.zl.Info().Timestamp().Msgf(msg, args...)
}

func (l *Logger) Warn(msg string) {
	l.zl.Warn().Timestamp().Msg(msg)
}

func (l *Logger) Warnf(msg string, args ...any) {
	l.zl.Warn().Timestamp().Msgf(msg, args...)
}

func (l *Logger) Error(err error, msg string) {
	l.zl.Error().Err(err).Timestamp().Msg(msg)
}

func (l *Logger) Errorf(err error, msg string, args ...any) {
	l.zl.Error().Err(err).Timestamp().Msgf(msg, args...)
}

// NewLogger builds a logger writing to w. Console output is used unless json is set.
func NewLogger(w io.Writer, level zerolog.Level, json, noColor bool) *zerolog.Logger {
	out := w
	if !json {
		out = zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
			cw.Out = w
			cw.NoColor = noColor
			cw.TimeFormat = time.DateTime
		})
	}

	l := zerolog.New(out).Level(level)

	return &l
}

// InitGlobals builds a stderr logger and installs it as the fallback context logger.
func InitGlobals(level zerolog.Level, json, noColor bool) *zerolog.Logger {
	l := NewLogger(os.Stderr, level, json, noColor)
	zerolog.DefaultContextLogger = l

	return l
}
