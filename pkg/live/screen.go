// Package live keeps a two-row live region at the bottom of a terminal
// and repaints it in place, scrolling permanent output above it.
package live

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Screen is a cursor-addressed terminal. Rows are counted from an
// arbitrary origin and only need to be consistent between calls.
type Screen interface {
	io.Writer
	Width() int
	Cursor() (col, row int)
	SetCursor(col, row int) error
}

// DefaultWidth is used when the terminal width cannot be queried.
const DefaultWidth = 80

// ANSIScreen drives a VT100-compatible terminal. It tracks the cursor from
// the bytes written through it and repositions with relative CSI moves, so
// it never has to query the terminal.
type ANSIScreen struct {
	out   io.Writer
	fd    int
	width int
	col   int
	row   int
}

// NewANSIScreen wraps out. A width of 0 means "ask the terminal", falling
// back to DefaultWidth when out is not one.
func NewANSIScreen(out io.Writer, width int) *ANSIScreen {
	fd := -1
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &ANSIScreen{out: out, fd: fd, width: width}
}

// Width returns the current terminal width in cells.
func (s *ANSIScreen) Width() int {
	if s.width > 0 {
		return s.width
	}
	if s.fd >= 0 {
		if w, _, err := term.GetSize(s.fd); err == nil && w > 0 {
			return w
		}
	}
	return DefaultWidth
}

func (s *ANSIScreen) Cursor() (col, row int) {
	return s.col, s.row
}

// SetCursor moves to the given column of the given row.
func (s *ANSIScreen) SetCursor(col, row int) error {
	var sb strings.Builder
	switch {
	case row < s.row:
		fmt.Fprintf(&sb, "\033[%dA", s.row-row)
	case row > s.row:
		fmt.Fprintf(&sb, "\033[%dB", row-s.row)
	}
	sb.WriteString("\r")
	if col > 0 {
		fmt.Fprintf(&sb, "\033[%dC", col)
	}
	if _, err := io.WriteString(s.out, sb.String()); err != nil {
		return fmt.Errorf("moving cursor: %w", err)
	}
	s.col, s.row = col, row
	return nil
}

func (s *ANSIScreen) Write(p []byte) (int, error) {
	n, err := s.out.Write(p)
	s.advance(string(p[:n]))
	return n, err
}

// advance updates the tracked cursor for text written at the cursor.
func (s *ANSIScreen) advance(text string) {
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		s.row += strings.Count(text, "\n")
		s.col = 0
		text = text[i+1:]
	}
	if i := strings.LastIndexByte(text, '\r'); i >= 0 {
		s.col = 0
		text = text[i+1:]
	}
	s.col += lipgloss.Width(text)
}
