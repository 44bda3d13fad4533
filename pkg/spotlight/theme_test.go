package spotlight

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPalettes(t *testing.T) {
	palettes := Palettes()
	assert.Len(t, palettes, 2)
	assert.Equal(t, DefaultPalette(), palettes["default"])
	assert.Equal(t, MonoPalette(), palettes["mono"])
}

func TestNewTheme_EmptyColourIsNoColour(t *testing.T) {
	theme := NewTheme(lipgloss.NewRenderer(io.Discard), "mono", MonoPalette())

	assert.Equal(t, "mono", theme.Name)
	assert.Equal(t, lipgloss.NoColor{}, theme.Warning.GetForeground())
	assert.Equal(t, lipgloss.Color("7"), theme.BarPrimary)
}
