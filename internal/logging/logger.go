package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger writes user-facing status lines to out and failures to errOut.
// Structured debug events go through zerolog on errOut.
type Logger struct {
	logger zerolog.Logger
	out    io.Writer
	errOut io.Writer
	color  bool
}

// NewLogger creates a logger at the given level.
func NewLogger(out, errOut io.Writer, level zerolog.Level) *Logger {
	color := isTerminal(errOut)
	output := zerolog.ConsoleWriter{
		Out:          errOut,
		NoColor:      !color,
		PartsExclude: []string{zerolog.TimestampFieldName},
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("[%s]", strings.ToUpper(fmt.Sprintf("%s", i)))
		},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("%s", i)
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s:", i)
		},
		FormatFieldValue: func(i interface{}) string {
			return fmt.Sprintf("%s", i)
		},
	}

	return &Logger{
		logger: zerolog.New(output).Level(level),
		out:    out,
		errOut: errOut,
		color:  color,
	}
}

// Default logs to the process's stdout and stderr at info level.
func Default() *Logger {
	return NewLogger(os.Stdout, os.Stderr, zerolog.InfoLevel)
}

// ParseLevel accepts zerolog level names; an empty string means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (l *Logger) paint(code, msg string) string {
	if !l.color {
		return msg
	}
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", code, msg)
}

func (l *Logger) enabled(level zerolog.Level) bool {
	return l.logger.GetLevel() <= level
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	if l.enabled(zerolog.InfoLevel) {
		fmt.Fprintf(l.out, "%s\n", msg)
	}
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// Success logs a success message
func (l *Logger) Success(msg string) {
	if l.enabled(zerolog.InfoLevel) {
		fmt.Fprintf(l.out, "%s\n", msg)
	}
}

// Successf logs a success message with formatting
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	if l.enabled(zerolog.WarnLevel) {
		fmt.Fprintf(l.errOut, "%s\n", l.paint("33", msg))
	}
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Warn(fmt.Sprintf(format, args...))
}

// Error logs an error message. Errors are written at every level.
func (l *Logger) Error(msg string) {
	fmt.Fprintf(l.errOut, "%s\n", l.paint("31", msg))
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// Debug starts a structured debug event.
func (l *Logger) Debug() *zerolog.Event {
	return l.logger.Debug()
}
