// Package log is a wrapper for the logrus Go logging package, used by the astamboly command.
// The encoder itself never logs.
package log

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Fields aliases logrus.Fields
type Fields = logrus.Fields

// Entry aliases logrus.Entry
type Entry = logrus.Entry

// Logger is the interface for loggers that can be used by applications. Messages are written
// through the entries it returns.
type Logger interface {
	WithField(key string, value interface{}) *Entry
	WithFields(Fields) *Entry

	SetLevel(string) error
	SetFormat(string) error
	SetOutput(io.Writer)
}

type logger struct {
	entry *logrus.Entry
}

// NewLogger creates a new logger writing text to stderr at level Info.
func NewLogger() Logger {
	l := logrus.New()
	return logger{entry: logrus.NewEntry(l)}
}

// WithField adds a field to the logger.
func (l logger) WithField(key string, value interface{}) *Entry {
	return l.entry.WithField(key, value)
}

// WithFields adds a map of fields to the logger.
func (l logger) WithFields(fields Fields) *Entry {
	return l.entry.WithFields(fields)
}

// SetLevel sets the logger level.
func (l logger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.entry.Logger.SetLevel(lvl)
	return nil
}

// SetFormat selects the "text" or "json" formatter.
func (l logger) SetFormat(format string) error {
	f, err := formatter(format)
	if err != nil {
		return err
	}
	l.entry.Logger.SetFormatter(f)
	return nil
}

// SetOutput sets the logger output.
func (l logger) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}

func formatter(format string) (logrus.Formatter, error) {
	switch format {
	case "", "text":
		return &logrus.TextFormatter{DisableTimestamp: true}, nil
	case "json":
		return &logrus.JSONFormatter{}, nil
	case "json-pretty":
		return &logrus.JSONFormatter{PrettyPrint: true}, nil
	}
	return nil, fmt.Errorf("invalid log format: %v", format)
}

var globalLogger = NewLogger()

// Global returns the default logger.
func Global() Logger {
	return globalLogger
}

// WithField adds a field to the global logger.
func WithField(key string, value interface{}) *Entry { return globalLogger.WithField(key, value) }

// WithFields adds a map of fields to the global logger.
func WithFields(fields Fields) *Entry { return globalLogger.WithFields(fields) }
