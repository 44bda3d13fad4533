// Package replay feeds a recorded runner console stream to a host.Logger.
//
// A recording is JSON lines, one call per line:
//
//	{"kind":"Header","text":"// Benchmark: Foo.Bar: DefaultJob","op":"line"}
//
// op is "line" (the default), "write" or "empty". kind is a host.LogKind
// name and may be omitted for "empty".
package replay

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dkoosis/spotlight/pkg/host"
)

// Ops.
const (
	OpLine  = "line"
	OpWrite = "write"
	OpEmpty = "empty"
)

// Record is one recorded logger call.
type Record struct {
	Kind string `json:"kind,omitempty"`
	Text string `json:"text,omitempty"`
	Op   string `json:"op,omitempty"`
}

// Apply performs the recorded call on l.
func (r Record) Apply(l host.Logger) error {
	if r.Op == OpEmpty {
		return l.WriteEmptyLine()
	}
	kind := host.KindDefault
	if r.Kind != "" {
		k, err := host.ParseLogKind(r.Kind)
		if err != nil {
			return err
		}
		kind = k
	}
	switch r.Op {
	case "", OpLine:
		return l.WriteLine(kind, r.Text)
	case OpWrite:
		return l.Write(kind, r.Text)
	default:
		return fmt.Errorf("unknown op %q", r.Op)
	}
}

// Stats counts what a replay did.
type Stats struct {
	Played    int
	Malformed int
}

type scanResult struct {
	line []byte
	err  error
}

// Stream replays the recording in r onto l until EOF or until ctx is
// cancelled, then flushes l. Lines that are not valid records are counted
// and skipped; an error from l stops the replay.
//
// On cancel Stream closes r if it is an io.Closer so the scanner unblocks.
func Stream(ctx context.Context, r io.Reader, l host.Logger) (Stats, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines := make(chan scanResult)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			cp := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- scanResult{line: cp}:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- scanResult{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	var stats Stats
	for {
		select {
		case <-ctx.Done():
			if c, ok := r.(io.Closer); ok {
				_ = c.Close()
			}
			return stats, ctx.Err()
		case res, ok := <-lines:
			if !ok {
				return stats, l.Flush()
			}
			if res.err != nil {
				return stats, fmt.Errorf("scanning recording: %w", res.err)
			}
			if len(res.line) == 0 {
				continue
			}
			var rec Record
			if err := json.Unmarshal(res.line, &rec); err != nil {
				stats.Malformed++
				continue
			}
			if err := rec.Apply(l); err != nil {
				return stats, fmt.Errorf("replaying record %d: %w", stats.Played+stats.Malformed+1, err)
			}
			stats.Played++
		}
	}
}
