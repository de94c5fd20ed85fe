package maze

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_Lines(t *testing.T) {
	g := newGrid(t, Position{0, 1}, Position{2, 3}, "X.XXX", "X...X", "XXX.X")

	before := g.Lines()
	if diff := cmp.Diff([]string{"X.XXX", "X...X", "XXX.X"}, before); diff != "" {
		t.Errorf("unsolved rendering mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(before, g.Lines()); diff != "" {
		t.Errorf("rendering is not idempotent (-first +second):\n%s", diff)
	}

	for _, p := range []Position{{0, 1}, {1, 1}, {1, 2}} {
		g.MarkVisited(p)
	}
	if diff := cmp.Diff([]string{"XWXXX", "XWW.X", "XXX.X"}, g.Lines()); diff != "" {
		t.Errorf("solved rendering mismatch (-want +got):\n%s", diff)
	}
}

func TestGrid_WriteTo(t *testing.T) {
	g := newGrid(t, Position{0, 0}, Position{1, 0}, "..", "X.")

	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)
	assert.Equal(t, "..\nX.\n", buf.String())
	assert.Equal(t, buf.String(), g.String())
}
