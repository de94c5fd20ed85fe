package maze

import (
	"fmt"
	"math/rand"
)

const (
	maxGeneratedDimension = 200
)

// move is a step between two adjacent lattice cells.
type move struct {
	from      Position
	to        Position
	direction Direction
}

// lattice is the cell graph Wilson's algorithm carves passages in. Cell
// (r, c) of the lattice is drawn at character (2r+1, 2c+1) of the output.
type lattice struct {
	width  int
	height int
	body   [][]byte
	rnd    *rand.Rand
}

// Generate builds a random perfect maze of width x height lattice cells
// with Wilson's algorithm and returns it as a descriptor.
//
// The descriptor is (2*height+1) rows by (2*width+1) columns. Its entry is
// an opening in the top border above the upper left cell and its exit an
// opening in the bottom border below the lower right cell. A perfect maze
// has no loops, so the wall follower always reaches the exit.
func Generate(width, height int, seed int64) (*Descriptor, error) {
	if min(width, height) <= 0 || max(width, height) > maxGeneratedDimension {
		return nil, fmt.Errorf("%w: %dx%d cells", ErrInvalidDimensions, width, height)
	}

	l := &lattice{
		width:  width,
		height: height,
		body:   make([][]byte, 2*height+1),
		rnd:    rand.New(rand.NewSource(seed)),
	}
	for i := range l.body {
		l.body[i] = make([]byte, 2*width+1)
		for j := range l.body[i] {
			l.body[i][j] = WallGlyph
		}
	}
	l.generate()

	entry := Position{Row: 0, Col: 1}
	exit := Position{Row: 2 * height, Col: 2*width - 1}
	l.body[entry.Row][entry.Col] = OpenGlyph
	l.body[exit.Row][exit.Col] = OpenGlyph

	body := make([]string, len(l.body))
	for i, line := range l.body {
		body[i] = string(line)
	}
	return &Descriptor{
		Rows:    len(body),
		Columns: 2*width + 1,
		Entry:   entry,
		Exit:    exit,
		Body:    body,
	}, nil
}

// randomCellPosition picks a random lattice cell.
func (l *lattice) randomCellPosition() Position {
	return Position{Row: l.rnd.Intn(l.height), Col: l.rnd.Intn(l.width)}
}

// randomUnvisitedCellPosition picks a random lattice cell that is not yet
// part of the maze.
func (l *lattice) randomUnvisitedCellPosition(visited map[Position]struct{}) Position {
	for {
		pos := l.randomCellPosition()
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// neighbors lists the moves from pos that stay inside the lattice, in
// clockwise order so a seeded run is reproducible.
func (l *lattice) neighbors(pos Position) []move {
	result := make([]move, 0, directionCount)
	for _, dir := range Directions {
		to := pos.Step(dir)
		if to.Row >= 0 && to.Row < l.height && to.Col >= 0 && to.Col < l.width {
			result = append(result, move{from: pos, to: to, direction: dir})
		}
	}
	return result
}

// carve opens the cell at pos and the wall between it and its neighbor.
func (l *lattice) carve(m move) {
	fr, fc := 2*m.from.Row+1, 2*m.from.Col+1
	dr, dc := m.direction.Delta()
	l.body[fr][fc] = OpenGlyph
	l.body[fr+dr][fc+dc] = OpenGlyph
	l.body[fr+2*dr][fc+2*dc] = OpenGlyph
}

// randomWalk walks from an unvisited cell until it hits the maze and
// returns the start together with the last exit taken from every cell.
// Following those exits from the start yields the loop-erased walk.
func (l *lattice) randomWalk(visited map[Position]struct{}) (Position, map[Position]move) {
	start := l.randomUnvisitedCellPosition(visited)
	exits := make(map[Position]move)
	cell := start

	for {
		neighbors := l.neighbors(cell)
		next := neighbors[l.rnd.Intn(len(neighbors))]
		exits[cell] = next
		if _, included := visited[next.to]; included {
			break
		}
		cell = next.to
	}

	return start, exits
}

// generate runs Wilson's algorithm until every lattice cell is connected.
func (l *lattice) generate() {
	visited := make(map[Position]struct{}, l.width*l.height)
	root := l.randomCellPosition()
	visited[root] = struct{}{}
	l.body[2*root.Row+1][2*root.Col+1] = OpenGlyph

	for len(visited) < l.width*l.height {
		cell, exits := l.randomWalk(visited)
		for {
			if _, included := visited[cell]; included {
				break
			}
			m := exits[cell]
			l.carve(m)
			visited[cell] = struct{}{}
			cell = m.to
		}
	}
}
