package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	// LevelSilent is above every real severity and suppresses all output.
	LevelSilent
)

// Custom slog levels for severities slog does not define.
const (
	slogLevelCritical = slog.Level(12)
	slogLevelSilent   = slog.Level(100)
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	case LevelSilent:
		return "SILENT"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	case LevelCritical:
		return slogLevelCritical
	case LevelSilent:
		return slogLevelSilent
	default:
		return slog.LevelWarn // Default to the baseline for unknown
	}
}

// DefaultLevel is the threshold used when neither -v nor -q is given.
const DefaultLevel = LevelWarn

// LevelFromVerbosity maps the -v/-q counters onto a threshold. Each quiet step
// raises the threshold by one level up to LevelSilent, each verbose step lowers
// it down to LevelDebug. Verbose wins when both are set.
func LevelFromVerbosity(verbose, quiet int) LogLevel {
	level := DefaultLevel
	if quiet > 0 {
		level = DefaultLevel + LogLevel(quiet)
		if level > LevelSilent {
			level = LevelSilent
		}
	}
	if verbose > 0 {
		level = DefaultLevel - LogLevel(verbose)
		if level < LevelDebug {
			level = LevelDebug
		}
	}
	return level
}

var defaultLogger *slog.Logger

// Init initializes the process logger. It is called once per command
// invocation, after the flags have been parsed.
func Init(level LogLevel, output io.Writer) {
	opts := &slog.HandlerOptions{
		Level: level.SlogLevel(),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == slogLevelCritical {
					a.Value = slog.StringValue("CRITICAL")
				}
			}
			return a
		},
	}
	defaultLogger = slog.New(slog.NewTextHandler(output, opts))
	slog.SetDefault(defaultLogger)
}

// Output returns the writer log records go to and a function releasing it:
// a size-rotated file when logFile is set, stderr otherwise.
func Output(logFile string) (io.Writer, func() error) {
	if logFile == "" {
		return os.Stderr, func() error { return nil }
	}
	w := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    16,
		MaxBackups: 3,
		MaxAge:     28,
	}
	return w, w.Close
}

// Enabled reports whether records at level would be written.
func Enabled(level LogLevel) bool {
	if defaultLogger == nil {
		return false
	}
	return defaultLogger.Enabled(context.Background(), level.SlogLevel())
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	if !Enabled(level) {
		return
	}

	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	var slogAttrs []slog.Attr
	slogAttrs = append(slogAttrs, slog.String("subsystem", subsystem))
	if err != nil {
		slogAttrs = append(slogAttrs, slog.String("error", err.Error()))
	}

	defaultLogger.LogAttrs(context.Background(), level.SlogLevel(), msg, slogAttrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}

// Critical logs a message that ends the current command.
func Critical(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelCritical, subsystem, err, messageFmt, args...)
}

// Logger is a subsystem-bound handle handed to command bodies.
type Logger struct {
	subsystem string
}

// For returns a Logger that tags every record with subsystem.
func For(subsystem string) Logger {
	return Logger{subsystem: subsystem}
}

// Subsystem returns the tag attached to records.
func (l Logger) Subsystem() string { return l.subsystem }

func (l Logger) Debug(messageFmt string, args ...interface{}) {
	Debug(l.subsystem, messageFmt, args...)
}

func (l Logger) Info(messageFmt string, args ...interface{}) {
	Info(l.subsystem, messageFmt, args...)
}

func (l Logger) Warn(messageFmt string, args ...interface{}) {
	Warn(l.subsystem, messageFmt, args...)
}

func (l Logger) Error(err error, messageFmt string, args ...interface{}) {
	Error(l.subsystem, err, messageFmt, args...)
}

func (l Logger) Critical(err error, messageFmt string, args ...interface{}) {
	Critical(l.subsystem, err, messageFmt, args...)
}
