// ABOUTME: Logrus-backed implementation of the core Logger interface
// ABOUTME: Maps field maps directly onto logrus structured fields

package logrus

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger implements the Logger interface on top of a logrus logger.
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogrusLogger creates a logger with the given level name. Unknown levels
// fall back to info.
func NewLogrusLogger(level string) *LogrusLogger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return &LogrusLogger{log: log}
}

// WrapLogrus adapts an existing logrus logger.
func WrapLogrus(log *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{log: log}
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
