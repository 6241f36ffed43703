// Package logger provides diagnostic logging for the addrsearch CLI.
// Warnings are always emitted; debug messages appear when verbose mode
// is enabled via the --verbose flag. Output goes to stderr so it never
// corrupts the terminal UI or piped command output.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.RWMutex
	verbose bool
	lg      = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.WarnLevel,
	})
}

// SetVerbose enables or disables debug logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	if v {
		lg.SetLevel(log.DebugLevel)
	} else {
		lg.SetLevel(log.WarnLevel)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer. Defaults to os.Stderr. Useful for
// testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	lg.SetOutput(w)
}

// Debug logs a message at debug level.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	lg.Debugf(format, args...)
}

// Info logs a message at info level.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	lg.Infof(format, args...)
}

// Warn logs a message at warn level.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	lg.Warnf(format, args...)
}

// Section marks a new phase in verbose output.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	lg.Debug(fmt.Sprintf("=== %s ===", name))
}
