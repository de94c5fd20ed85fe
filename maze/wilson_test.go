package maze_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-walker/maze"
	"github.com/beka-birhanu/vinom-walker/walker"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("shape and openings", func(t *testing.T) {
		d, err := maze.Generate(6, 4, 1)
		require.NoError(t, err)

		assert.Equal(t, 9, d.Rows)
		assert.Equal(t, 13, d.Columns)
		assert.Equal(t, maze.Position{Row: 0, Col: 1}, d.Entry)
		assert.Equal(t, maze.Position{Row: 8, Col: 11}, d.Exit)
		require.NoError(t, d.Validate())

		assert.Equal(t, " ", string(d.Body[0][1]))
		assert.Equal(t, 1, strings.Count(d.Body[0], " "), "top border has one opening")
		assert.Equal(t, 1, strings.Count(d.Body[8], " "), "bottom border has one opening")
		for _, line := range d.Body {
			assert.Equal(t, byte('X'), line[0])
			assert.Equal(t, byte('X'), line[len(line)-1])
		}
	})

	t.Run("every lattice cell is carved", func(t *testing.T) {
		d, err := maze.Generate(5, 5, 7)
		require.NoError(t, err)
		for r := 1; r < d.Rows; r += 2 {
			for c := 1; c < d.Columns; c += 2 {
				assert.Equal(t, byte(' '), d.Body[r][c], "cell (%d,%d)", r, c)
			}
		}
	})

	t.Run("perfect maze has cells-1 passages", func(t *testing.T) {
		const w, h = 8, 6
		d, err := maze.Generate(w, h, 42)
		require.NoError(t, err)

		open := 0
		for _, line := range d.Body {
			open += strings.Count(line, " ")
		}
		// cells + passages + entry and exit openings
		assert.Equal(t, w*h+(w*h-1)+2, open)
	})

	t.Run("same seed same maze", func(t *testing.T) {
		a, err := maze.Generate(10, 10, 99)
		require.NoError(t, err)
		b, err := maze.Generate(10, 10, 99)
		require.NoError(t, err)
		if diff := cmp.Diff(a.Body, b.Body); diff != "" {
			t.Errorf("seeded mazes differ (-a +b):\n%s", diff)
		}
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, -1}, {201, 1}} {
			_, err := maze.Generate(dims[0], dims[1], 0)
			assert.True(t, errors.Is(err, maze.ErrInvalidDimensions), "%v", dims)
		}
	})
}

func TestGenerate_SolvableByWallFollower(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		d, err := maze.Generate(12, 9, seed)
		require.NoError(t, err)
		g, err := maze.New(d)
		require.NoError(t, err)

		res, err := walker.New(g, &walker.Options{MaxSteps: walker.StateSpace(g)}).Solve(d.Entry, d.Exit)
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, d.Exit, res.Final.Position)

		cell, _ := g.Cell(d.Exit)
		assert.Equal(t, maze.Visited, cell)
	}
}
