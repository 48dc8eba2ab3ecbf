// Package logger is the process-wide diagnostic logger. It writes to stderr
// so it never mixes with command output on stdout.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.RWMutex
	current = newLogger(os.Stderr, log.WarnLevel)
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "hairjourney",
		Level:  level,
	})
}

// Init replaces the logger. An empty level keeps warn; an unknown level is
// reported and also falls back to warn.
func Init(level string, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	lvl := log.WarnLevel
	var parseErr error
	if trimmed := strings.TrimSpace(level); trimmed != "" {
		parsed, err := log.ParseLevel(strings.ToLower(trimmed))
		if err != nil {
			parseErr = err
		} else {
			lvl = parsed
		}
	}
	l := newLogger(w, lvl)
	mu.Lock()
	current = l
	mu.Unlock()
	if parseErr != nil {
		l.Warn("unknown log level, using warn", "level", level)
	}
}

func active() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Debug logs at debug level with key-value pairs.
func Debug(msg string, keyvals ...interface{}) {
	active().Debug(msg, keyvals...)
}

// Info logs at info level with key-value pairs.
func Info(msg string, keyvals ...interface{}) {
	active().Info(msg, keyvals...)
}

// Warn logs at warn level with key-value pairs.
func Warn(msg string, keyvals ...interface{}) {
	active().Warn(msg, keyvals...)
}

// Error logs at error level with key-value pairs.
func Error(msg string, keyvals ...interface{}) {
	active().Error(msg, keyvals...)
}
