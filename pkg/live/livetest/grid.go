// Package livetest provides an in-memory terminal for testing code that
// draws on a live.Screen.
package livetest

import "strings"

// Grid is a terminal of a fixed width backed by a grid of cells. It
// interprets line feeds and carriage returns and nothing else, so output
// must not contain escape sequences.
type Grid struct {
	width    int
	rows     [][]rune
	col, row int
}

// NewGrid creates an empty grid width cells wide.
func NewGrid(width int) *Grid {
	return &Grid{width: width}
}

func (g *Grid) Write(p []byte) (int, error) {
	for _, r := range string(p) {
		switch r {
		case '\n':
			g.row++
			g.col = 0
		case '\r':
			g.col = 0
		default:
			g.put(r)
			g.col++
		}
	}
	return len(p), nil
}

func (g *Grid) put(r rune) {
	for len(g.rows) <= g.row {
		g.rows = append(g.rows, nil)
	}
	line := g.rows[g.row]
	for len(line) <= g.col {
		line = append(line, ' ')
	}
	line[g.col] = r
	g.rows[g.row] = line
}

func (g *Grid) Width() int { return g.width }

// SetWidth simulates a terminal resize.
func (g *Grid) SetWidth(width int) { g.width = width }

func (g *Grid) Cursor() (col, row int) { return g.col, g.row }

func (g *Grid) SetCursor(col, row int) error {
	g.col, g.row = col, row
	return nil
}

// Line returns row i exactly as drawn, trailing blanks included.
func (g *Grid) Line(i int) string {
	if i < 0 || i >= len(g.rows) {
		return ""
	}
	return string(g.rows[i])
}

// Len is the number of rows anything was drawn on.
func (g *Grid) Len() int { return len(g.rows) }

// Text returns every row with trailing blanks removed.
func (g *Grid) Text() []string {
	lines := make([]string, len(g.rows))
	for i := range g.rows {
		lines[i] = strings.TrimRight(g.Line(i), " ")
	}
	return lines
}
