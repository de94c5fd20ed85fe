package maze

// Cell is the state of a single square of the grid.
// Visited is written by the walker and takes rendering precedence over the
// square's original glyph.
type Cell uint8

const (
	Open Cell = iota
	Wall
	Visited
)

// Glyphs used by the text descriptor and the renderer.
const (
	WallGlyph    byte = 'X' // WallGlyph marks a wall in a descriptor body.
	VisitedGlyph byte = 'W' // VisitedGlyph marks a cell the walker stepped on.
	OpenGlyph    byte = ' ' // OpenGlyph is used for open cells that carry no glyph of their own.
)

// String returns the name of the cell state.
func (c Cell) String() string {
	switch c {
	case Open:
		return "Open"
	case Wall:
		return "Wall"
	case Visited:
		return "Visited"
	default:
		return "Unknown"
	}
}

// CellFromGlyph classifies a descriptor character.
// 'X' is a wall, every other character is open.
func CellFromGlyph(g byte) Cell {
	if g == WallGlyph {
		return Wall
	}
	return Open
}

// Position is a zero-indexed (row, column) coordinate measured from the
// upper left corner of the grid.
type Position struct {
	Row int `json:"row" yaml:"row" bson:"row"` // Row index of the cell
	Col int `json:"col" yaml:"col" bson:"col"` // Column index of the cell
}

// Step returns the position one cell away in direction d.
// The result is not bounds-checked; callers validate it against a Grid.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}
