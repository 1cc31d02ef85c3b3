// Package logger provides the component loggers used across the service.
package logger

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

var ErrNoOutput = errors.New("logger output is nil")

// Logger writes leveled messages tagged with a component name.
type Logger struct {
	entry *logrus.Entry
	tag   string
}

// New creates a logger for the named component. A non-empty color is used
// for the component tag and forces coloured level names.
func New(component, color string, out io.Writer) (*Logger, error) {
	if out == nil {
		return nil, ErrNoOutput
	}

	base := logrus.New()
	base.SetOutput(out)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   color != "",
		DisableColors: color == "",
	})

	tag := "[" + component + "]"
	if color != "" {
		tag = color + tag + colorReset
	}

	return &Logger{
		entry: base.WithField("component", component),
		tag:   tag,
	}, nil
}

// Info logs a message at info level.
func (l *Logger) Info(msg string) {
	l.entry.Info(l.tag + " " + msg)
}

// Warning logs a message at warning level.
func (l *Logger) Warning(msg string) {
	l.entry.Warn(l.tag + " " + msg)
}

// Error logs a message at error level.
func (l *Logger) Error(msg string) {
	l.entry.Error(l.tag + " " + msg)
}
