package live

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/spotlight/pkg/live/livetest"
)

func plainRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

// defaultMessage is an unlabelled, empty progress bar.
func defaultMessage() Message {
	return Message{
		Primary:   lipgloss.Color("10"),
		Secondary: lipgloss.Color("0"),
	}
}

func newTestConsole(width int) (*Console, *livetest.Grid) {
	screen := livetest.NewGrid(width)
	return NewConsole(screen, WithRenderer(plainRenderer())), screen
}

func TestConsole_WriteLive_TruncatesMessageToWidth(t *testing.T) {
	c, screen := newTestConsole(20)

	require.NoError(t, c.WriteLive("abcdefghijklmnopqrstuvwxyz0123", defaultMessage()))

	assert.Equal(t, "["+strings.Repeat(" ", 18)+"]", screen.Line(0))
	assert.Equal(t, "> abcdefghijklmnopqr", screen.Line(1))
	assert.Len(t, screen.Line(1), 20)
	assert.True(t, c.live)
}

func TestConsole_WriteLive_ShorterMessageBlanksRow(t *testing.T) {
	c, screen := newTestConsole(20)

	require.NoError(t, c.WriteLive("abcdefghijklmnopqrstuvwxyz", defaultMessage()))
	require.NoError(t, c.WriteLive("short", defaultMessage()))

	assert.Equal(t, "> short"+strings.Repeat(" ", 13), screen.Line(1))
	assert.Equal(t, "", screen.Line(2), "region must stay two rows")
	col, row := screen.Cursor()
	assert.Equal(t, 0, col)
	assert.Equal(t, 2, row)
}

func TestConsole_WriteLive_MultiLineMessagePaintsLastLine(t *testing.T) {
	c, screen := newTestConsole(20)

	require.NoError(t, c.WriteLive("first\r\n  second  \n\n", defaultMessage()))

	assert.Equal(t, "> second"+strings.Repeat(" ", 12), screen.Line(1))
	assert.Equal(t, "", screen.Line(2))
}

func TestConsole_WriteLive_FollowsResize(t *testing.T) {
	c, screen := newTestConsole(20)
	require.NoError(t, c.WriteLive("message", defaultMessage()))

	screen.SetWidth(30)
	require.NoError(t, c.WriteLive("message", defaultMessage()))

	assert.Equal(t, "["+strings.Repeat(" ", 28)+"]", screen.Line(0))
	assert.Len(t, screen.Line(1), 30)
}

func TestConsole_WriteLive_BlankMessageKeepsRegion(t *testing.T) {
	c, screen := newTestConsole(20)

	require.NoError(t, c.WriteLive(" \n\r\n  ", defaultMessage()))
	assert.False(t, c.live, "nothing to paint")
	assert.Zero(t, screen.Len())

	require.NoError(t, c.Write("partial", plainRenderer().NewStyle()))
	require.NoError(t, c.WriteLive("", defaultMessage()))
	require.NoError(t, c.WriteLive("live", defaultMessage()))
	assert.Equal(t, []string{"partial", "[", "> live"}, trimmedRows(screen))
}

func trimmedRows(screen *livetest.Grid) []string {
	rows := screen.Text()
	for i, row := range rows {
		if strings.HasPrefix(row, "[") {
			rows[i] = "["
		}
	}
	return rows
}

func TestConsole_WriteLive_StartsOnFreshRow(t *testing.T) {
	c, screen := newTestConsole(20)

	require.NoError(t, c.Write("partial", plainRenderer().NewStyle()))
	require.NoError(t, c.WriteLive("live", defaultMessage()))

	assert.Equal(t, "partial", screen.Line(0))
	assert.True(t, strings.HasPrefix(screen.Line(1), "["))
	assert.True(t, strings.HasPrefix(screen.Line(2), "> live"))
}

func TestConsole_PermanentWriteClearsLiveRegion(t *testing.T) {
	c, screen := newTestConsole(20)
	style := plainRenderer().NewStyle()

	require.NoError(t, c.WriteLine("before", style))
	require.NoError(t, c.WriteLive("working on it", defaultMessage()))
	require.NoError(t, c.WriteLine("done", style))

	assert.False(t, c.live)
	assert.Equal(t, "before", screen.Line(0))
	assert.Equal(t, "done", strings.TrimRight(screen.Line(1), " "))
	assert.Equal(t, "", strings.TrimRight(screen.Line(2), " "))
	col, row := screen.Cursor()
	assert.Equal(t, 0, col)
	assert.Equal(t, 2, row)
}

func TestConsole_ClearWithoutLiveIsNoop(t *testing.T) {
	c, screen := newTestConsole(20)
	require.NoError(t, c.Clear())
	assert.Zero(t, screen.Len())
}

func TestConsole_WriteEmptyLine(t *testing.T) {
	c, screen := newTestConsole(20)
	require.NoError(t, c.WriteLive("x", defaultMessage()))
	require.NoError(t, c.WriteEmptyLine())

	col, row := screen.Cursor()
	assert.Equal(t, 0, col)
	assert.Equal(t, 1, row)
	assert.False(t, c.live)
}

func TestConsole_Bar_LabelFits(t *testing.T) {
	c, screen := newTestConsole(20)
	msg := defaultMessage()
	msg.Label = "Foo (1/2)"

	require.NoError(t, c.WriteLive("m", msg))

	assert.Equal(t, "[Foo (1/2)         ]", screen.Line(0))
}

func TestConsole_Bar_LabelTruncatedWithEllipsis(t *testing.T) {
	c, screen := newTestConsole(20)
	msg := defaultMessage()
	msg.Label = "VeryLongBenchmarkName.Method (1/2)"

	require.NoError(t, c.WriteLive("m", msg))

	assert.Equal(t, "[VeryLongBenchma...]", screen.Line(0))
}

func TestConsole_Bar_SkippedOnNarrowTerminal(t *testing.T) {
	c, screen := newTestConsole(4)

	require.NoError(t, c.WriteLive("abcdef", defaultMessage()))

	assert.Equal(t, "", screen.Line(0))
	assert.Equal(t, "> ab", screen.Line(1))
}

func TestSplitPoint(t *testing.T) {
	assert.Equal(t, 7, SplitPoint(20, 0.33))
	assert.Equal(t, 0, SplitPoint(20, 0))
	assert.Equal(t, 20, SplitPoint(20, 1))
	assert.Equal(t, 20, SplitPoint(20, 1.5))
	assert.Equal(t, 0, SplitPoint(20, -0.5))
}

func TestConsole_Bar_CompletedSegmentWidth(t *testing.T) {
	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	r.SetColorProfile(termenv.ANSI)
	c := NewConsole(NewANSIScreen(&buf, 22), WithRenderer(r))

	msg := defaultMessage()
	msg.Ratio = 0.33
	require.NoError(t, c.WriteLive("m", msg))

	raw := buf.String()
	start := strings.Index(raw, "[") + 1
	end := strings.Index(raw[start:], "\033[0m")
	require.Positive(t, end, "completed segment must be styled")
	assert.Equal(t, strings.Repeat(" ", 7), stripANSI(raw[start:start+end]))

	bar := strings.SplitN(stripANSI(raw), "\n", 2)[0]
	assert.Equal(t, "\r["+strings.Repeat(" ", 20)+"]", bar)
}

func TestConsole_RepaintMovesBackToTop(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(NewANSIScreen(&buf, 20), WithRenderer(plainRenderer()))

	require.NoError(t, c.WriteLive("one", defaultMessage()))
	buf.Reset()
	require.NoError(t, c.WriteLive("two", defaultMessage()))

	assert.True(t, strings.HasPrefix(buf.String(), "\033[2A\r"), "got %q", buf.String())
}

type failingScreen struct{ *livetest.Grid }

var errBroken = errors.New("broken pipe")

func (f *failingScreen) Write([]byte) (int, error) { return 0, errBroken }

func TestConsole_PropagatesWriteErrors(t *testing.T) {
	c := NewConsole(&failingScreen{livetest.NewGrid(20)}, WithRenderer(plainRenderer()))

	err := c.WriteLive("x", defaultMessage())
	require.ErrorIs(t, err, errBroken)

	err = c.WriteLine("y", plainRenderer().NewStyle())
	require.ErrorIs(t, err, errBroken)
}

func stripANSI(s string) string {
	var result strings.Builder
	i := 0
	for i < len(s) {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			result.WriteByte(s[i])
			i++
		}
	}
	return result.String()
}
