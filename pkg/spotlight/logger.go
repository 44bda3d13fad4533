package spotlight

import (
	"go.uber.org/zap"

	"github.com/dkoosis/spotlight/pkg/host"
	"github.com/dkoosis/spotlight/pkg/live"
	"github.com/dkoosis/spotlight/pkg/progress"
)

// LoggerID identifies the spotlight logger to the runner.
const LoggerID = "SpotlitLogger"

// Logger is a host.Logger that only persists hints, warnings, errors and
// result tables. Everything else goes to the live progress region.
//
// Logger is not safe for concurrent use; the runner serializes its calls.
type Logger struct {
	console *live.Console
	machine *machine
	current State
	trace   *zap.Logger
}

// LoggerOption configures a Logger.
type LoggerOption func(*Logger)

// WithTheme sets the styles of permanent output and the progress bar.
func WithTheme(theme Theme) LoggerOption {
	return func(l *Logger) { l.machine.theme = theme }
}

// WithTrace logs every state transition at debug level.
func WithTrace(trace *zap.Logger) LoggerOption {
	return func(l *Logger) { l.trace = trace }
}

// NewLogger creates a logger drawing on console.
func NewLogger(console *live.Console, opts ...LoggerOption) *Logger {
	l := &Logger{
		console: console,
		machine: &machine{console: console, theme: DefaultTheme(console.Renderer())},
		current: idle,
		trace:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ host.Logger = (*Logger)(nil)

func (l *Logger) ID() string    { return LoggerID }
func (l *Logger) Priority() int { return 0 }

// Write handles text without a line break.
func (l *Logger) Write(kind host.LogKind, text string) error {
	if text == progress.StreamFinished {
		return l.console.Clear()
	}
	return l.step(writeCall(kind, text))
}

// WriteLine handles text followed by a line break.
func (l *Logger) WriteLine(kind host.LogKind, text string) error {
	if text == progress.StreamFinished {
		return l.console.Clear()
	}
	return l.step(lineCall(kind, text))
}

// WriteEmptyLine handles a bare line break.
func (l *Logger) WriteEmptyLine() error {
	return l.step(bareCall())
}

// Flush is a no-op; the console writes through.
func (l *Logger) Flush() error { return nil }

func (l *Logger) step(c call) error {
	from := l.current
	next, err := l.machine.transitions().run(from, c)
	l.current = next

	if ce := l.trace.Check(zap.DebugLevel, "transition"); ce != nil {
		ce.Write(
			zap.Stringer("kind", c.kind),
			zap.Bool("line", c.line),
			zap.Stringer("from", from),
			zap.Stringer("to", next),
			zap.String("text", c.text),
			zap.Error(err),
		)
	}
	return err
}
