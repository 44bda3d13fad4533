package spotlight

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/spotlight/pkg/host"
	"github.com/dkoosis/spotlight/pkg/live"
	"github.com/dkoosis/spotlight/pkg/progress"
)

// idleState holds when no benchmark is known. It writes permanently.
type idleState struct{}

// kindState persists help, warning and error lines permanently while the
// line kind stays the same.
type kindState struct {
	kind  host.LogKind
	bench *benchmarkState
}

// benchmarkState owns the progress record of the benchmark being run.
type benchmarkState struct {
	run *progress.Benchmark
}

// continuousState renders lines of one kind into the live region.
type continuousState struct {
	kind  host.LogKind
	bench *benchmarkState
}

// singleShotState renders one line into the live region and falls back.
type singleShotState struct {
	bench *benchmarkState
}

// progressDecorator updates the bound progress record from every line it
// sees and otherwise behaves as inner.
type progressDecorator struct {
	inner State
	bench *benchmarkState
}

// tableState writes result tables permanently under a header naming the
// benchmark.
type tableState struct {
	bench        *benchmarkState
	afterNewline bool
	inTable      bool
}

var (
	idle = &idleState{}

	idleHelp    = &kindState{kind: host.KindHelp}
	idleWarning = &kindState{kind: host.KindWarning}
	idleError   = &kindState{kind: host.KindError}
)

func (s *idleState) identity() State         { return s }
func (s *kindState) identity() State         { return s }
func (s *benchmarkState) identity() State    { return s }
func (s *continuousState) identity() State   { return s }
func (s *singleShotState) identity() State   { return s }
func (s *progressDecorator) identity() State { return s.inner.identity() }
func (s *tableState) identity() State        { return s }

func (s *idleState) String() string { return "idle" }

func (s *kindState) String() string { return strings.ToLower(s.kind.String()) }

func (s *benchmarkState) String() string {
	return fmt.Sprintf("benchmark(%s.%s)", s.run.Name(), s.run.Method())
}

func (s *continuousState) String() string { return "live(" + s.kind.String() + ")" }

func (s *singleShotState) String() string { return "live(once)" }

func (s *progressDecorator) String() string { return "progress+" + s.inner.String() }

func (s *tableState) String() string {
	if s.inTable {
		return "table(open)"
	}
	return "table"
}

// fallback is the state a kind-bound state returns to.
func fallback(bench *benchmarkState) State {
	if bench != nil {
		return bench
	}
	return idle
}

func withProgress(bench *benchmarkState) *progressDecorator {
	return &progressDecorator{inner: &singleShotState{bench: bench}, bench: bench}
}

// extract applies a progress update line to the bound record.
func (s *progressDecorator) extract(text string) {
	if s.bench == nil {
		return
	}
	if u, ok := progress.ParseRemained(text); ok {
		s.bench.run.Apply(u)
	}
}

// isTableLine reports whether text is a markdown table row or separator.
func isTableLine(text string) bool {
	return len(text) >= 2 && text[0] == '|' && (text[1] == ' ' || text[1] == '-')
}

// machine binds the dispatch table to a console and a theme.
type machine struct {
	console *live.Console
	theme   Theme
}

func (m *machine) transitions() transitions {
	return transitions{before: m.before, perform: m.perform, after: m.after}
}

func (m *machine) before(s State, c call) (State, error) {
	switch s := s.(type) {
	case *idleState:
		return idleBefore(c), nil
	case *kindState:
		return kindBefore(s, s.kind, s.bench, c), nil
	case *benchmarkState:
		return s.before(c), nil
	case *continuousState:
		return kindBefore(s, s.kind, s.bench, c), nil
	case *singleShotState:
		return s, nil
	case *progressDecorator:
		if !c.bare {
			s.extract(c.text)
			if s.bench != nil && s.bench.run.Advance(c.text) {
				// A new method is a new state over the same record, so the
				// cycle guard does not mistake it for a revisit.
				return &benchmarkState{run: s.bench.run}, nil
			}
		}
		return m.before(s.inner, c)
	case *tableState:
		return m.tableBefore(s, c)
	default:
		panic(fmt.Sprintf("spotlight: unknown state %T", s))
	}
}

func (m *machine) perform(s State, c call) error {
	switch s := s.(type) {
	case *idleState:
		return m.permanent(m.theme.Default, c)
	case *kindState:
		return m.permanent(m.kindStyle(s.kind), c)
	case *benchmarkState:
		return m.permanent(m.theme.Benchmark, c)
	case *continuousState:
		return m.live(s.bench, c)
	case *singleShotState:
		return m.live(s.bench, c)
	case *progressDecorator:
		if !c.bare {
			s.extract(c.text)
		}
		return m.perform(s.inner, c)
	case *tableState:
		if err := m.permanent(m.theme.Table, c); err != nil {
			return err
		}
		s.afterNewline = c.line
		return nil
	default:
		panic(fmt.Sprintf("spotlight: unknown state %T", s))
	}
}

func (m *machine) after(s State, c call) (State, error) {
	switch s := s.(type) {
	case *singleShotState:
		return fallback(s.bench), nil
	case *progressDecorator:
		if !c.bare {
			s.extract(c.text)
		}
		return m.after(s.inner, c)
	case *idleState, *kindState, *benchmarkState, *continuousState, *tableState:
		return s, nil
	default:
		panic(fmt.Sprintf("spotlight: unknown state %T", s))
	}
}

func idleBefore(c call) State {
	switch c.kind {
	case host.KindHelp:
		return idleHelp
	case host.KindWarning:
		return idleWarning
	case host.KindError:
		return idleError
	case host.KindHeader:
		if run, ok := progress.Create(c.text); ok {
			return &benchmarkState{run: run}
		}
		return &singleShotState{}
	case host.KindHint, host.KindInfo, host.KindDefault:
		return &continuousState{kind: c.kind}
	default:
		return idle
	}
}

func kindBefore(s State, kind host.LogKind, bench *benchmarkState, c call) State {
	if c.bare || c.kind == kind {
		return s
	}
	return fallback(bench)
}

func (s *benchmarkState) before(c call) State {
	switch c.kind {
	case host.KindHelp, host.KindWarning, host.KindError:
		return &kindState{kind: c.kind, bench: s}
	case host.KindHeader:
		if next, ok := progress.Create(c.text); ok && next.Name() != s.run.Name() {
			return &benchmarkState{run: next.Continue(s.run)}
		}
		return withProgress(s)
	case host.KindStatistic:
		return &tableState{bench: s, afterNewline: true}
	default:
		return &continuousState{kind: c.kind, bench: s}
	}
}

func (m *machine) tableBefore(s *tableState, c call) (State, error) {
	table := isTableLine(c.text)

	if s.inTable {
		if !s.afterNewline || table {
			return s, nil
		}
		s.inTable = false
		return s.exit(c.kind), nil
	}

	if s.afterNewline && table {
		if err := m.console.WriteEmptyLine(); err != nil {
			return s, err
		}
		if err := m.console.WriteLine(s.bench.run.Name()+":", m.theme.Table); err != nil {
			return s, err
		}
		s.inTable = true
		return s, nil
	}

	return s.exit(c.kind), nil
}

func (s *tableState) exit(kind host.LogKind) State {
	if kind == host.KindStatistic {
		return withProgress(s.bench)
	}
	return s.bench
}

func (m *machine) permanent(style lipgloss.Style, c call) error {
	switch {
	case c.bare:
		return m.console.WriteEmptyLine()
	case c.line:
		return m.console.WriteLine(c.text, style)
	default:
		return m.console.Write(c.text, style)
	}
}

func (m *machine) live(bench *benchmarkState, c call) error {
	if c.bare {
		return nil
	}
	return m.console.WriteLive(c.text, m.message(bench))
}

// message builds the progress bar content for bench.
func (m *machine) message(bench *benchmarkState) live.Message {
	msg := live.Message{Primary: m.theme.BarPrimary, Secondary: m.theme.BarSecondary}
	if bench != nil {
		msg.Label = bench.run.Label()
		msg.Ratio = bench.run.Ratio()
	}
	return msg
}

func (m *machine) kindStyle(kind host.LogKind) lipgloss.Style {
	switch kind {
	case host.KindHelp:
		return m.theme.Help
	case host.KindWarning:
		return m.theme.Warning
	case host.KindError:
		return m.theme.Error
	default:
		return m.theme.Default
	}
}
