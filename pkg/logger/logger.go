// Package logger provides structured logging for the CGPA calculator.
// It keeps a small field-based API on top of go-kit/log, with level
// filtering and context propagation.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Level represents the severity of a log message.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for general operational information.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a Level. Unknown input yields LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR", "FATAL":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) filter() level.Option {
	switch l {
	case LevelDebug:
		return level.AllowDebug()
	case LevelWarn:
		return level.AllowWarn()
	case LevelError:
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// Format selects the line encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatLogfmt Format = "logfmt"
)

// ParseFormat parses a format name. Anything but "logfmt"/"text" is JSON.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "logfmt", "text":
		return FormatLogfmt
	default:
		return FormatJSON
	}
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// Common field constructors for convenience.
func String(key, value string) Field          { return Field{Key: key, Value: value} }
func Int(key string, value int) Field         { return Field{Key: key, Value: value} }
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field       { return Field{Key: key, Value: value} }

// Err creates an error field.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

// Logger is the main logger struct.
type Logger struct {
	base kitlog.Logger
}

// Options configures the logger.
type Options struct {
	Output    io.Writer
	Level     Level
	Format    Format
	AddCaller bool
}

// DefaultOptions returns sensible defaults for the logger.
// Output goes to stderr so stdout stays free for reports.
func DefaultOptions() Options {
	return Options{
		Output:    os.Stderr,
		Level:     LevelInfo,
		Format:    FormatJSON,
		AddCaller: true,
	}
}

// New creates a new Logger with the given options.
func New(opts Options) *Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	w := kitlog.NewSyncWriter(opts.Output)

	var base kitlog.Logger
	if opts.Format == FormatLogfmt {
		base = kitlog.NewLogfmtLogger(w)
	} else {
		base = kitlog.NewJSONLogger(w)
	}

	base = level.NewFilter(base, opts.Level.filter())
	base = kitlog.With(base, "ts", kitlog.DefaultTimestampUTC)
	if opts.AddCaller {
		// user code -> Info -> log -> kit Log
		base = kitlog.With(base, "caller", kitlog.Caller(5))
	}

	return &Logger{base: base}
}

// Default creates a logger with default options.
func Default() *Logger {
	return New(DefaultOptions())
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: kitlog.NewNopLogger()}
}

// With returns a new Logger with the given fields added.
func (l *Logger) With(fields ...Field) *Logger {
	if len(fields) == 0 {
		return l
	}
	return &Logger{base: kitlog.With(l.base, keyvals(fields)...)}
}

func keyvals(fields []Field) []any {
	kv := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		kv = append(kv, f.Key, f.Value)
	}
	return kv
}

func (l *Logger) log(lvl Level, msg string, fields ...Field) {
	var leveled kitlog.Logger
	switch lvl {
	case LevelDebug:
		leveled = level.Debug(l.base)
	case LevelWarn:
		leveled = level.Warn(l.base)
	case LevelError:
		leveled = level.Error(l.base)
	default:
		leveled = level.Info(l.base)
	}

	kv := make([]any, 0, 2+len(fields)*2)
	kv = append(kv, "msg", msg)
	kv = append(kv, keyvals(fields)...)
	_ = leveled.Log(kv...)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...Field) {
	l.log(LevelDebug, msg, fields...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...any) {
	l.log(LevelDebug, fmt.Sprintf(format, args...))
}

// Context key for logger.
type ctxKey struct{}

// WithContext returns a new context with the logger attached.
func WithContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context, or returns a default logger.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return Default()
}

// Calculator-related logging helpers.
func Component(name string) Field      { return String("component", name) }
func Operation(name string) Field      { return String("operation", name) }
func CalculationID(id string) Field    { return String("calculation_id", id) }
func Semester(index int) Field         { return Int("semester", index) }
func InputMode(mode string) Field      { return String("input_mode", mode) }
func ScaleName(name string) Field      { return String("scale", name) }
func Latency(d time.Duration) Field    { return Duration("latency", d) }
func SubjectName(name string) Field    { return String("subject", name) }
func Clamped(from, to float64) []Field { return []Field{Float64("from", from), Float64("to", to)} }
