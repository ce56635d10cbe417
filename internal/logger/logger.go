// Package logger is the zerolog wrapper shared by every iconshelf component.
// A nil *Logger is valid and discards everything.
package logger

import (
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level string
	// Console switches from JSON lines to zerolog's console format.
	Console bool
	// File, when set, is opened for appending and takes precedence over
	// Writer. The browser logs here because it owns the terminal.
	File      string
	Writer    io.Writer
	Component string
}

// Logger wraps a zerolog.Logger.
type Logger struct {
	base   zerolog.Logger
	closer io.Closer
}

// New creates a Logger. Callers that pass Options.File must Close it.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer
	)
	switch {
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		out, closer = f, f
	case opts.Writer != nil:
		out = opts.Writer
	}

	if opts.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: opts.File != ""}
	}

	zctx := zerolog.New(out).Level(level).With().Timestamp()
	if opts.Component != "" {
		zctx = zctx.Str("component", opts.Component)
	}
	return &Logger{base: zctx.Logger(), closer: closer}, nil
}

func parseLevel(value string) (zerolog.Level, error) {
	if value == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(value))
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// Close releases the log file opened by New, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// WithFields returns a derived logger that always writes the supplied fields.
// Fields are added in key order so output is stable.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	zctx := l.base.With()
	for _, key := range keys {
		zctx = zctx.Interface(key, fields[key])
	}
	return &Logger{base: zctx.Logger()}
}

// With returns a derived logger carrying a single extra field.
func (l *Logger) With(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// Err returns a derived logger that attaches err to every entry.
func (l *Logger) Err(err error) *Logger {
	if l == nil || err == nil {
		return l
	}
	return &Logger{base: l.base.With().Err(err).Logger()}
}

func (l *Logger) Trace(msg string) { l.write(zerolog.TraceLevel, msg) }
func (l *Logger) Debug(msg string) { l.write(zerolog.DebugLevel, msg) }
func (l *Logger) Info(msg string)  { l.write(zerolog.InfoLevel, msg) }
func (l *Logger) Warn(msg string)  { l.write(zerolog.WarnLevel, msg) }

// Error writes msg at error level with err attached.
func (l *Logger) Error(err error, msg string) {
	l.Err(err).write(zerolog.ErrorLevel, msg)
}

func (l *Logger) write(level zerolog.Level, msg string) {
	if l == nil {
		return
	}
	l.base.WithLevel(level).Msg(msg)
}
