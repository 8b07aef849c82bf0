// Package logging writes library diagnostics to a log file, away from
// the terminal a control is painting on. Logging is off until
// Configure points it at a file; trace events additionally require
// SetTraceEnabled.
package logging

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu           sync.Mutex
	logger       *log.Logger
	logFile      *os.File
	traceEnabled bool
)

// Configure sets the log destination. An empty path disables logging.
func Configure(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
		logger = nil
	}
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return nil
}

// SetTraceEnabled toggles emission of trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// Error records an error. Nil errors and unconfigured logging are
// ignored.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	l := logger
	mu.Unlock()
	if l == nil {
		return
	}
	l.Error(err.Error())
}

// Trace records a structured trace entry when tracing is enabled.
func Trace(event string, kv ...interface{}) {
	mu.Lock()
	l := logger
	enabled := traceEnabled
	mu.Unlock()
	if l == nil || !enabled {
		return
	}
	l.Debug(event, kv...)
}
