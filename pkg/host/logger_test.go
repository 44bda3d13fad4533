package host

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf)

	require.NoError(t, l.Write(KindInfo, "a"))
	require.NoError(t, l.WriteLine(KindError, "b"))
	require.NoError(t, l.WriteEmptyLine())
	require.NoError(t, l.Flush())

	assert.Equal(t, "ab\n\n", buf.String())
	assert.Equal(t, "ConsoleLogger", l.ID())
}

type failingLogger struct{ ConsoleLogger }

func (failingLogger) ID() string                      { return "failing" }
func (failingLogger) WriteLine(LogKind, string) error { return errors.New("broken") }

func TestTee(t *testing.T) {
	var a, b bytes.Buffer
	l := Tee(NewConsoleLogger(&a), NewConsoleLogger(&b))

	require.NoError(t, l.WriteLine(KindHeader, "x"))
	require.NoError(t, l.WriteEmptyLine())
	assert.Equal(t, "x\n\n", a.String())
	assert.Equal(t, a.String(), b.String())

	single := NewConsoleLogger(&a)
	assert.Same(t, single, Tee(single))
}

func TestTee_StopsAtFirstError(t *testing.T) {
	var after bytes.Buffer
	l := Tee(&failingLogger{}, NewConsoleLogger(&after))

	err := l.WriteLine(KindDefault, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing: broken")
	assert.Empty(t, after.String())
}
