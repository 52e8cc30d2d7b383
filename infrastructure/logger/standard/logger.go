// ABOUTME: Standard logger implementation using Go's standard log package
// ABOUTME: Structured fields are rendered as a JSON suffix on each line

package standard

import (
	"encoding/json"
	"log"
	"os"
)

// StandardLogger implements the Logger interface using the standard library.
type StandardLogger struct {
	out *log.Logger
	err *log.Logger
}

// NewStandardLogger creates a new standard logger writing to stdout/stderr.
func NewStandardLogger() *StandardLogger {
	return &StandardLogger{
		out: log.New(os.Stdout, "", log.LstdFlags),
		err: log.New(os.Stderr, "", log.LstdFlags),
	}
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.write(l.out, "DEBUG", msg, fields)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.write(l.out, "INFO", msg, fields)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.write(l.out, "WARN", msg, fields)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.write(l.err, "ERROR", msg, fields)
}

func (l *StandardLogger) write(logger *log.Logger, level, msg string, fields map[string]interface{}) {
	if len(fields) == 0 {
		logger.Printf("[%s] %s", level, msg)
		return
	}

	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		logger.Printf("[%s] %s (failed to marshal fields: %v)", level, msg, err)
		return
	}
	logger.Printf("[%s] %s %s", level, msg, string(fieldsJSON))
}
