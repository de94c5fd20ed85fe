package maze

import (
	"io"
	"strings"
)

// Lines renders the grid as one string per row, each the concatenation of
// the row's glyphs in column order. It never modifies the grid.
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	row := make([]byte, g.columns)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.columns; c++ {
			row[c] = g.Glyph(Position{Row: r, Col: c})
		}
		lines[r] = string(row)
	}
	return lines
}

// String provides a textual representation of the maze, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.columns + 1))
	for _, line := range g.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes the rendered grid to w.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())
	return int64(n), err
}
