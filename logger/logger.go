// Package logger provides a levelled logger that tags every line with a
// coloured component prefix, e.g. "[APP]" or "[SOLVER]".
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-walker/config"
)

var ErrNilWriter = errors.New("logger output is nil")

// Logger writes Info, Warning and Error lines for one component.
type Logger struct {
	out *log.Logger
}

// New creates a logger whose lines start with the prefix drawn in color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	tag := fmt.Sprintf("%s[%s]%s ", color, prefix, config.ColorReset)
	return &Logger{out: log.New(w, tag, log.LstdFlags)}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{out: log.New(io.Discard, "", 0)}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.out.Printf("%s[INFO]%s %s", config.LogInfoColor, config.LogColorReset, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.out.Printf("%s[WARNING]%s %s", config.LogWarningColor, config.LogColorReset, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.out.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, msg)
}
