package maze

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrid(t *testing.T, entry, exit Position, body ...string) *Grid {
	t.Helper()
	g, err := New(&Descriptor{
		Rows:    len(body),
		Columns: len(body[0]),
		Entry:   entry,
		Exit:    exit,
		Body:    body,
	})
	require.NoError(t, err)
	return g
}

func TestNew(t *testing.T) {
	t.Run("classifies cells", func(t *testing.T) {
		g := newGrid(t, Position{0, 1}, Position{1, 1}, "X.o", "X .")

		assert.Equal(t, 2, g.Rows())
		assert.Equal(t, 3, g.Columns())
		for _, tc := range []struct {
			pos  Position
			want Cell
		}{
			{Position{0, 0}, Wall},
			{Position{0, 1}, Open},
			{Position{0, 2}, Open},
			{Position{1, 0}, Wall},
			{Position{1, 1}, Open},
		} {
			got, ok := g.Cell(tc.pos)
			assert.True(t, ok)
			assert.Equal(t, tc.want, got, "cell %v", tc.pos)
		}
	})

	t.Run("rejects inconsistent descriptors", func(t *testing.T) {
		tests := []struct {
			name string
			d    Descriptor
			want error
		}{
			{"no rows", Descriptor{Rows: 0, Columns: 1}, ErrInvalidDimensions},
			{"negative columns", Descriptor{Rows: 1, Columns: -1}, ErrInvalidDimensions},
			{"missing row", Descriptor{Rows: 2, Columns: 1, Body: []string{"."}}, ErrDescriptorMismatch},
			{"ragged row", Descriptor{Rows: 2, Columns: 2, Body: []string{"..", "."}}, ErrDescriptorMismatch},
			{"entry outside", Descriptor{Rows: 1, Columns: 1, Entry: Position{0, 1}, Body: []string{"."}}, ErrPositionOutOfBounds},
			{"exit outside", Descriptor{Rows: 1, Columns: 1, Exit: Position{-1, 0}, Body: []string{"."}}, ErrPositionOutOfBounds},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := New(&tt.d)
				assert.True(t, errors.Is(err, tt.want), "got %v", err)
			})
		}
	})
}

func TestGrid_IsWallOutsideBounds(t *testing.T) {
	g := newGrid(t, Position{0, 0}, Position{1, 1}, "..", "..")

	extremes := []int{math.MinInt, -1000000, -2, -1, 2, 3, 1000000, math.MaxInt}
	for _, r := range extremes {
		for _, c := range append(extremes, 0, 1) {
			p := Position{Row: r, Col: c}
			assert.False(t, g.InBounds(p), "%v in bounds", p)
			assert.True(t, g.IsWall(p), "%v not a wall", p)
		}
	}
	for _, c := range extremes {
		p := Position{Row: 0, Col: c}
		assert.True(t, g.IsWall(p), "%v not a wall", p)
	}

	assert.False(t, g.IsWall(Position{1, 1}))
}

func TestGrid_IsWallAhead(t *testing.T) {
	g := newGrid(t, Position{0, 0}, Position{0, 1}, ".X", "..")

	assert.True(t, g.IsWallAhead(Position{0, 0}, North), "boundary")
	assert.True(t, g.IsWallAhead(Position{0, 0}, West), "boundary")
	assert.True(t, g.IsWallAhead(Position{0, 0}, East), "wall cell")
	assert.False(t, g.IsWallAhead(Position{0, 0}, South))
	assert.True(t, g.IsWallAhead(Position{-5, 9}, South), "outside the grid")
}

func TestGrid_MarkVisited(t *testing.T) {
	t.Run("marks the cell", func(t *testing.T) {
		g := newGrid(t, Position{0, 0}, Position{0, 1}, "..")
		g.MarkVisited(Position{0, 1})

		got, _ := g.Cell(Position{0, 1})
		assert.Equal(t, Visited, got)
		assert.False(t, g.IsWall(Position{0, 1}))
		assert.Equal(t, 1, g.VisitedCount())
	})

	t.Run("panics outside the grid", func(t *testing.T) {
		g := newGrid(t, Position{0, 0}, Position{0, 1}, "..")
		assert.Panics(t, func() { g.MarkVisited(Position{0, 2}) })
	})
}

func TestGrid_Glyph(t *testing.T) {
	g := newGrid(t, Position{0, 1}, Position{0, 2}, "X.o")

	assert.Equal(t, WallGlyph, g.Glyph(Position{0, 0}))
	assert.Equal(t, byte('.'), g.Glyph(Position{0, 1}))
	assert.Equal(t, byte('o'), g.Glyph(Position{0, 2}))
	assert.Equal(t, WallGlyph, g.Glyph(Position{3, 3}))

	g.MarkVisited(Position{0, 1})
	g.MarkVisited(Position{0, 0})
	assert.Equal(t, VisitedGlyph, g.Glyph(Position{0, 1}))
	assert.Equal(t, VisitedGlyph, g.Glyph(Position{0, 0}), "visited takes precedence over wall")
}

func TestCellFromGlyph(t *testing.T) {
	assert.Equal(t, Wall, CellFromGlyph('X'))
	for _, g := range []byte{' ', '.', 'x', 'W', '#'} {
		assert.Equal(t, Open, CellFromGlyph(g), "glyph %q", g)
	}
}
