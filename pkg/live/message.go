package live

import "github.com/charmbracelet/lipgloss"

// Message is the progress bar content of one live paint.
type Message struct {
	Label     string
	Primary   lipgloss.TerminalColor
	Secondary lipgloss.TerminalColor
	Ratio     float64
}
