// Package log provides the structured logger used across the verification packages.
//
// Two implementations are provided:
//
//   - ZapLogger: backed by Uber's zap, with console, logfmt and json output
//   - NoopLogger: discards everything; the default when no logger is supplied
//
// Loggers are configured through Config, which can be filled from the
// environment (LOG_FORMAT, LOG_LEVEL, LOG_OUTPUT) with cleanenv.
package log

// Logger is a logger interface.
// keysAndValues are treated as key-value pairs (e.g., "address", addr, "err", err).
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	// Fatal logs at fatal level; the zap implementation exits the process.
	Fatal(msg string, keysAndValues ...any)
	// WithKV returns a logger that attaches key and value to every entry.
	WithKV(key string, value any) Logger
	// WithName returns a logger named by appending name to the current name.
	WithName(name string) Logger
	Name() string
}

// Level represents the severity level of a log message.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

var _ Logger = NoopLogger{}

// NoopLogger discards all log messages.
type NoopLogger struct{}

// NewNoopLogger returns a logger whose operations do nothing.
func NewNoopLogger() Logger { return NoopLogger{} }

func (NoopLogger) Debug(string, ...any)       {}
func (NoopLogger) Info(string, ...any)        {}
func (NoopLogger) Warn(string, ...any)        {}
func (NoopLogger) Error(string, ...any)       {}
func (NoopLogger) Fatal(string, ...any)       {}
func (n NoopLogger) WithKV(string, any) Logger { return n }
func (n NoopLogger) WithName(string) Logger    { return n }
func (NoopLogger) Name() string               { return "noop" }
