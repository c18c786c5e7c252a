// Package logger provides the diagnostic logger shared by cmdalias packages.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

// EnvLogLevel names the environment variable consulted when no level flag is given.
const EnvLogLevel = "CMDALIAS_LOG_LEVEL"

// Logger is the global logger instance. It writes to stderr so that it never
// mixes with output meant for the shell.
var Logger *log.Logger

func init() {
	Logger = newLogger(os.Stderr, log.WarnLevel)
}

// Configure sets the level and destination of the global logger.
// The flag value takes precedence over EnvLogLevel; the default level is warn.
func Configure(levelFlag string, w io.Writer) error {
	level := levelFlag
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	if level == "" {
		level = "warn"
	}

	parsed, err := ParseLevel(level)
	if err != nil {
		return err
	}
	if w == nil {
		w = os.Stderr
	}
	Logger = newLogger(w, parsed)
	return nil
}

// ParseLevel converts a level name to a log level.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.WarnLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
	}
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: "cmdalias",
		Level:  level,
	})
	if !isTerminal(w) {
		l.SetFormatter(log.LogfmtFormatter)
	}
	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}
