// Package progress tracks the state of the benchmark run currently in
// flight and recognizes the runner lines that report on it.
package progress

import "fmt"

// UnknownETA is the ETA shown before the runner has estimated one.
const UnknownETA = "unknown"

// Benchmark is the progress record of one benchmark run. A single record is
// shared by reference between every state that reads or updates it.
type Benchmark struct {
	name      string
	method    string
	total     int
	remaining *int
	eta       string
}

// New creates a record for the named benchmark.
func New(name, method string, total int) *Benchmark {
	return &Benchmark{name: name, method: method, total: total, eta: UnknownETA}
}

// Create builds a record from a "Found" or benchmark identity line.
func Create(text string) (*Benchmark, bool) {
	if total, ok := ParseFound(text); ok {
		return New("", "", total), true
	}
	if id, ok := ParseIdentity(text); ok {
		return New(id.Name, id.Method, 0), true
	}
	return nil, false
}

func (b *Benchmark) Name() string { return b.name }

// Method returns the method field as recorded, regardless of progress.
func (b *Benchmark) Method() string { return b.method }

func (b *Benchmark) Total() int { return b.total }

func (b *Benchmark) ETA() string { return b.eta }

// Remaining returns the remaining count and whether it is known.
func (b *Benchmark) Remaining() (int, bool) {
	if b.remaining == nil {
		return 0, false
	}
	return *b.remaining, true
}

// Completed is total minus remaining, or 0 while remaining is unknown.
func (b *Benchmark) Completed() int {
	if b.remaining == nil {
		return 0
	}
	return b.total - *b.remaining
}

// Ratio is the completed fraction of the run in [0, 1] for sane counts.
func (b *Benchmark) Ratio() float64 {
	if b.total == 0 {
		return 0
	}
	return float64(b.Completed()) / float64(b.total)
}

// DisplayMethod hides the method once the run is complete.
func (b *Benchmark) DisplayMethod() string {
	if b.Ratio() == 1 {
		return ""
	}
	return b.method
}

// Label is the progress bar caption for the record.
func (b *Benchmark) Label() string {
	if m := b.DisplayMethod(); m != "" {
		return fmt.Sprintf("%s.%s (%d/%d)", b.name, m, b.Completed(), b.total)
	}
	return fmt.Sprintf("%s (%d/%d)", b.name, b.Completed(), b.total)
}

// Advance records a new method of the same benchmark starting. It reports
// true when the method changed. The run-finished line clears the method.
func (b *Benchmark) Advance(text string) bool {
	if IsRunFinished(text) {
		b.method = ""
		return false
	}
	id, ok := ParseIdentity(text)
	if !ok || id.Name != b.name || id.Method == b.method {
		return false
	}
	b.method = id.Method
	return true
}

// Apply stores the remaining count and ETA of a progress update. The
// completion ratio stays derived from the counts.
func (b *Benchmark) Apply(u Update) {
	remaining := u.Remaining
	b.remaining = &remaining
	b.eta = u.ETA
}

// Continue carries the counts and ETA of prev over to b, for a run that
// moves on to the next benchmark type.
func (b *Benchmark) Continue(prev *Benchmark) *Benchmark {
	if prev.remaining != nil {
		remaining := *prev.remaining
		b.remaining = &remaining
	} else {
		b.remaining = nil
	}
	b.total = prev.total
	b.eta = prev.eta
	return b
}
