package host

import (
	"fmt"
	"io"
)

// Logger receives the runner's classified console stream.
type Logger interface {
	ID() string
	Priority() int
	Write(kind LogKind, text string) error
	WriteLine(kind LogKind, text string) error
	WriteEmptyLine() error
	Flush() error
}

// ConsoleLogger is the runner's built-in logger. It writes every line
// straight through to its writer.
type ConsoleLogger struct {
	out io.Writer
}

// NewConsoleLogger creates a console logger writing to out.
func NewConsoleLogger(out io.Writer) *ConsoleLogger {
	return &ConsoleLogger{out: out}
}

func (l *ConsoleLogger) ID() string    { return "ConsoleLogger" }
func (l *ConsoleLogger) Priority() int { return 0 }

func (l *ConsoleLogger) Write(_ LogKind, text string) error {
	_, err := io.WriteString(l.out, text)
	return err
}

func (l *ConsoleLogger) WriteLine(_ LogKind, text string) error {
	_, err := fmt.Fprintln(l.out, text)
	return err
}

func (l *ConsoleLogger) WriteEmptyLine() error {
	_, err := fmt.Fprintln(l.out)
	return err
}

// Flush is a no-op; writes are unbuffered.
func (l *ConsoleLogger) Flush() error { return nil }

type teeLogger []Logger

// Tee returns a logger that forwards every call to each of loggers in
// order, stopping at the first error.
func Tee(loggers ...Logger) Logger {
	if len(loggers) == 1 {
		return loggers[0]
	}
	return teeLogger(loggers)
}

func (t teeLogger) ID() string    { return "TeeLogger" }
func (t teeLogger) Priority() int { return 0 }

func (t teeLogger) each(fn func(Logger) error) error {
	for _, l := range t {
		if err := fn(l); err != nil {
			return fmt.Errorf("%s: %w", l.ID(), err)
		}
	}
	return nil
}

func (t teeLogger) Write(kind LogKind, text string) error {
	return t.each(func(l Logger) error { return l.Write(kind, text) })
}

func (t teeLogger) WriteLine(kind LogKind, text string) error {
	return t.each(func(l Logger) error { return l.WriteLine(kind, text) })
}

func (t teeLogger) WriteEmptyLine() error {
	return t.each(Logger.WriteEmptyLine)
}

func (t teeLogger) Flush() error {
	return t.each(Logger.Flush)
}
