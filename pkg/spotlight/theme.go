package spotlight

import "github.com/charmbracelet/lipgloss"

// Palette names the colours of a theme as ANSI colour numbers or hex
// strings. An empty entry leaves the terminal colour unchanged.
type Palette struct {
	Default      string `yaml:"default"`
	Benchmark    string `yaml:"benchmark"`
	Help         string `yaml:"help"`
	Warning      string `yaml:"warning"`
	Error        string `yaml:"error"`
	Live         string `yaml:"live"`
	Table        string `yaml:"table"`
	BarPrimary   string `yaml:"bar_primary"`
	BarSecondary string `yaml:"bar_secondary"`
}

// Theme holds the styles each state writes with.
type Theme struct {
	Name         string
	Default      lipgloss.Style
	Benchmark    lipgloss.Style
	Help         lipgloss.Style
	Warning      lipgloss.Style
	Error        lipgloss.Style
	Live         lipgloss.Style
	Table        lipgloss.Style
	BarPrimary   lipgloss.TerminalColor
	BarSecondary lipgloss.TerminalColor
}

// DefaultPalette mirrors the runner's own console colours.
func DefaultPalette() Palette {
	return Palette{
		Default:      "15", // white
		Benchmark:    "7",  // gray
		Help:         "2",  // dark green
		Warning:      "3",  // dark yellow
		Error:        "1",  // dark red
		Live:         "8",  // dark gray
		Table:        "14", // cyan
		BarPrimary:   "10", // green
		BarSecondary: "0",  // black
	}
}

// MonoPalette keeps the terminal's colours except for the progress bar.
func MonoPalette() Palette {
	return Palette{
		BarPrimary:   "7",
		BarSecondary: "0",
	}
}

// Palettes returns the built-in palettes by name.
func Palettes() map[string]Palette {
	return map[string]Palette{
		"default": DefaultPalette(),
		"mono":    MonoPalette(),
	}
}

// NewTheme builds the styles of p for renderer r.
func NewTheme(r *lipgloss.Renderer, name string, p Palette) Theme {
	style := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(color(c))
	}
	return Theme{
		Name:         name,
		Default:      style(p.Default),
		Benchmark:    style(p.Benchmark),
		Help:         style(p.Help),
		Warning:      style(p.Warning),
		Error:        style(p.Error),
		Live:         style(p.Live),
		Table:        style(p.Table),
		BarPrimary:   color(p.BarPrimary),
		BarSecondary: color(p.BarSecondary),
	}
}

// DefaultTheme is NewTheme with the default palette.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return NewTheme(r, "default", DefaultPalette())
}

func color(c string) lipgloss.TerminalColor {
	if c == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c)
}
