/*
Package maze models a rectangular maze as a fixed-size grid of cells.

Each cell is Open, Wall or Visited. The grid is built once from a Descriptor
and afterwards only the walker writes to it, marking the cells it steps on.
Every access goes through bounds-checked accessors: positions outside the
grid read as walls, which is how the maze boundary is modelled.

The package also provides the four cardinal directions with their rotations,
a text renderer for the grid and a random perfect-maze generator.
*/
package maze

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions   = errors.New("invalid maze dimensions")
	ErrDescriptorMismatch  = errors.New("maze body does not match its dimensions")
	ErrPositionOutOfBounds = errors.New("position is out of the maze")
)

// Descriptor is the loader's view of a maze: its size, the entry and exit
// positions and one string per row holding the original cell glyphs.
type Descriptor struct {
	Rows    int      // Number of rows (height)
	Columns int      // Number of columns (width)
	Entry   Position // Where the walker starts
	Exit    Position // Where the walker stops
	Body    []string // Rows lines of Columns glyphs each
}

// Validate checks that the body matches the declared dimensions and that
// both the entry and the exit lie inside the maze.
func (d *Descriptor) Validate() error {
	if d.Rows <= 0 || d.Columns <= 0 {
		return fmt.Errorf("%w: %d rows by %d columns", ErrInvalidDimensions, d.Rows, d.Columns)
	}
	if len(d.Body) != d.Rows {
		return fmt.Errorf("%w: %d rows declared, %d given", ErrDescriptorMismatch, d.Rows, len(d.Body))
	}
	for row, line := range d.Body {
		if len(line) != d.Columns {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrDescriptorMismatch, row, len(line), d.Columns)
		}
	}
	inBound := func(p Position) bool {
		return p.Row >= 0 && p.Row < d.Rows && p.Col >= 0 && p.Col < d.Columns
	}
	if !inBound(d.Entry) {
		return fmt.Errorf("%w: entry %v", ErrPositionOutOfBounds, d.Entry)
	}
	if !inBound(d.Exit) {
		return fmt.Errorf("%w: exit %v", ErrPositionOutOfBounds, d.Exit)
	}
	return nil
}

// Grid is a rows x columns maze. Its dimensions never change after New.
type Grid struct {
	rows    int
	columns int
	cells   []Cell // row-major cell states
	glyphs  []byte // row-major descriptor glyphs, rendered for open cells
}

// New builds a grid from a validated copy of the descriptor's body.
func New(d *Descriptor) (*Grid, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	g := &Grid{
		rows:    d.Rows,
		columns: d.Columns,
		cells:   make([]Cell, d.Rows*d.Columns),
		glyphs:  make([]byte, d.Rows*d.Columns),
	}
	for row, line := range d.Body {
		for col := 0; col < d.Columns; col++ {
			i := row*d.Columns + col
			g.glyphs[i] = line[col]
			g.cells[i] = CellFromGlyph(line[col])
		}
	}
	return g, nil
}

// Rows returns the number of rows of the grid.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns of the grid.
func (g *Grid) Columns() int { return g.columns }

// InBounds reports whether p lies inside the grid. It is safe for any
// integer coordinates, negative ones included.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.columns
}

// Cell returns the state of the cell at p. The second result is false when
// p is outside the grid.
func (g *Grid) Cell(p Position) (Cell, bool) {
	if !g.InBounds(p) {
		return Wall, false
	}
	return g.cells[g.index(p)], true
}

// IsWall reports whether p is a wall. Positions outside the grid are walls.
func (g *Grid) IsWall(p Position) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.cells[g.index(p)] == Wall
}

// IsWallAhead reports whether the cell one step from p in direction d is a
// wall. It is safe for positions on or beyond the grid boundary.
func (g *Grid) IsWallAhead(p Position, d Direction) bool {
	return g.IsWall(p.Step(d))
}

// MarkVisited sets the cell at p to Visited.
// p must be inside the grid; MarkVisited panics otherwise.
func (g *Grid) MarkVisited(p Position) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("maze: MarkVisited at %v outside %dx%d grid", p, g.rows, g.columns))
	}
	g.cells[g.index(p)] = Visited
}

// Glyph returns the character the renderer prints for the cell at p.
// Visited cells print VisitedGlyph whatever they held before; open cells
// print their descriptor glyph and walls print WallGlyph.
func (g *Grid) Glyph(p Position) byte {
	cell, ok := g.Cell(p)
	if !ok {
		return WallGlyph
	}
	switch cell {
	case Visited:
		return VisitedGlyph
	case Wall:
		return WallGlyph
	default:
		if glyph := g.glyphs[g.index(p)]; glyph != 0 {
			return glyph
		}
		return OpenGlyph
	}
}

// VisitedCount returns the number of cells marked Visited.
func (g *Grid) VisitedCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Visited {
			n++
		}
	}
	return n
}

// index maps an in-bounds position to its row-major offset.
func (g *Grid) index(p Position) int {
	return p.Row*g.columns + p.Col
}
