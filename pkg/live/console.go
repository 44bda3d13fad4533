package live

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	defaultPrefix   = "> "
	defaultEllipsis = "..."

	// MinWidth is the narrowest terminal the progress bar is drawn on.
	MinWidth = 5
)

var rowBuffers = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// Console is the single point of terminal output. Permanent text scrolls
// normally; the live region is two rows (progress bar, message) that are
// overwritten in place until permanent text arrives.
//
// Console is not safe for concurrent use.
type Console struct {
	screen   Screen
	renderer *lipgloss.Renderer
	text     *lipgloss.Style
	prefix   string
	ellipsis string

	live bool
	top  int
}

// Option configures a Console.
type Option func(*Console)

// WithRenderer sets the renderer used for colours. It decides the colour
// profile; the default renderer detects it from the screen.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(c *Console) { c.renderer = r }
}

// WithMessageStyle styles the message row of the live region.
func WithMessageStyle(style lipgloss.Style) Option {
	return func(c *Console) { c.text = &style }
}

// WithPrefix sets the marker written before the live message.
func WithPrefix(prefix string) Option {
	return func(c *Console) { c.prefix = prefix }
}

// NewConsole creates a console drawing on screen.
func NewConsole(screen Screen, opts ...Option) *Console {
	c := &Console{
		screen:   screen,
		prefix:   defaultPrefix,
		ellipsis: defaultEllipsis,
		top:      -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.renderer == nil {
		c.renderer = lipgloss.NewRenderer(screen)
	}
	if c.text == nil {
		plain := c.renderer.NewStyle()
		c.text = &plain
	}
	return c
}

// Write clears the live region and writes text permanently.
func (c *Console) Write(text string, style lipgloss.Style) error {
	if err := c.Clear(); err != nil {
		return err
	}
	return c.writeString(paint(style, text))
}

// WriteLine clears the live region and writes text and a line break permanently.
func (c *Console) WriteLine(text string, style lipgloss.Style) error {
	if err := c.Clear(); err != nil {
		return err
	}
	return c.writeString(paint(style, text) + "\n")
}

// WriteEmptyLine clears the live region and writes a line break.
func (c *Console) WriteEmptyLine() error {
	if err := c.Clear(); err != nil {
		return err
	}
	return c.writeString("\n")
}

// WriteLive paints message into the live region. Each line of a multi-line
// message is painted over the previous one; a blank message paints nothing.
func (c *Console) WriteLive(message string, msg Message) error {
	lines := splitMessage(message)
	if len(lines) == 0 {
		return nil
	}
	width := c.screen.Width()

	if !c.live {
		col, row := c.screen.Cursor()
		if col != 0 {
			if err := c.writeString("\n"); err != nil {
				return err
			}
			row++
		}
		c.live = true
		c.top = row
	}

	prefixWidth := runewidth.StringWidth(c.prefix)
	maxLineWidth := max(width-prefixWidth, 0)

	for _, line := range lines {
		if err := c.screen.SetCursor(0, c.top); err != nil {
			return err
		}

		truncated := runewidth.Truncate(line, maxLineWidth, "")

		buf := rowBuffers.Get().(*bytes.Buffer)
		buf.Reset()
		c.writeBar(buf, msg, width)
		buf.WriteString(paint(*c.text, c.prefix+truncated))
		writeBlanks(buf, width-prefixWidth-runewidth.StringWidth(truncated))
		buf.WriteByte('\n')

		_, err := c.screen.Write(buf.Bytes())
		rowBuffers.Put(buf)
		if err != nil {
			return fmt.Errorf("painting live region: %w", err)
		}
	}
	return nil
}

// Clear blanks the live region and leaves the cursor at its top row.
func (c *Console) Clear() error {
	if !c.live || c.top < 0 {
		return nil
	}
	width := c.screen.Width()

	if err := c.screen.SetCursor(0, c.top); err != nil {
		return err
	}

	buf := rowBuffers.Get().(*bytes.Buffer)
	buf.Reset()
	for range 2 {
		writeBlanks(buf, width)
		buf.WriteByte('\n')
	}
	_, err := c.screen.Write(buf.Bytes())
	rowBuffers.Put(buf)
	if err != nil {
		return fmt.Errorf("clearing live region: %w", err)
	}

	if err := c.screen.SetCursor(0, c.top); err != nil {
		return err
	}
	c.live = false
	return nil
}

// writeBar renders the bracketed progress bar row, including its line break.
func (c *Console) writeBar(buf *bytes.Buffer, msg Message, width int) {
	if width < MinWidth {
		buf.WriteByte('\n')
		return
	}

	barWidth := width - 2
	maxLabelWidth := barWidth - runewidth.StringWidth(c.ellipsis)

	label := msg.Label
	if runewidth.StringWidth(label) > maxLabelWidth {
		label = runewidth.Truncate(label, maxLabelWidth, "") + c.ellipsis
	}

	var cells strings.Builder
	cells.WriteString(label)
	cells.WriteString(strings.Repeat(" ", max(barWidth-runewidth.StringWidth(label), 0)))
	bar := cells.String()

	left := runewidth.Truncate(bar, SplitPoint(barWidth, msg.Ratio), "")
	right := bar[len(left):]

	primary, secondary := colorOr(msg.Primary), colorOr(msg.Secondary)
	completed := c.renderer.NewStyle().Foreground(secondary).Background(primary)
	pending := c.renderer.NewStyle().Foreground(primary)

	buf.WriteByte('[')
	buf.WriteString(paint(completed, left))
	buf.WriteString(paint(pending, right))
	buf.WriteString("]\n")
}

func (c *Console) writeString(s string) error {
	if _, err := io.WriteString(c.screen, s); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}
	return nil
}

// SplitPoint is the number of completed cells of a bar barWidth cells wide.
func SplitPoint(barWidth int, ratio float64) int {
	n := int(math.Ceil(float64(barWidth) * ratio))
	return min(max(n, 0), barWidth)
}

// splitMessage breaks message into trimmed, non-empty lines.
func splitMessage(message string) []string {
	var lines []string
	for _, line := range strings.FieldsFunc(message, func(r rune) bool { return r == '\n' || r == '\r' }) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// paint styles text line by line so multi-line text is not padded into a block.
func paint(style lipgloss.Style, text string) string {
	if text == "" {
		return ""
	}
	style = style.TabWidth(lipgloss.NoTabConversion)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func writeBlanks(buf *bytes.Buffer, n int) {
	for range max(n, 0) {
		buf.WriteByte(' ')
	}
}

func colorOr(c lipgloss.TerminalColor) lipgloss.TerminalColor {
	if c == nil {
		return lipgloss.NoColor{}
	}
	return c
}

// Renderer returns the renderer deciding the console's colour profile.
func (c *Console) Renderer() *lipgloss.Renderer {
	return c.renderer
}
