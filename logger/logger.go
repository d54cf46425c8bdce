// Package logger provides the prefixed, levelled logger used across services.
package logger

import (
	"errors"
	"io"
	"log"
	"strings"

	"github.com/beka-birhanu/vinom-planner/config"
	"github.com/mattn/go-isatty"
)

var ErrEmptyPrefix = errors.New("logger: prefix must not be empty")

// Logger writes lines shaped "[PREFIX] [LEVEL] message".
// The prefix is coloured when the destination is a terminal.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
	tty    bool
}

// New creates a logger for one component.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		w = io.Discard
	}

	tty := false
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		tty = isatty.IsTerminal(f.Fd())
	}

	return &Logger{
		prefix: strings.ToUpper(prefix),
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
		tty:    tty,
	}, nil
}

func (l *Logger) write(level, levelColor, msg string) {
	if l.tty {
		l.out.Printf("%s[%s]%s %s[%s]%s %s", l.color, l.prefix, config.ColorReset, levelColor, level, config.ColorReset, msg)
		return
	}
	l.out.Printf("[%s] [%s] %s", l.prefix, level, msg)
}

// Info logs a routine event.
func (l *Logger) Info(msg string) {
	l.write("INFO", config.LogInfoColor, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write("WARNING", config.LogWarningColor, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write("ERROR", config.LogErrorColor, msg)
}
