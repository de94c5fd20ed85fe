package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-walker/config"
	dmn "github.com/beka-birhanu/vinom-walker/domain"
	"github.com/beka-birhanu/vinom-walker/infrastruture/token"
	"github.com/beka-birhanu/vinom-walker/loader"
	"github.com/beka-birhanu/vinom-walker/logger"
	"github.com/beka-birhanu/vinom-walker/service"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const channelMaze = "3,3\n1,0\n1,2\nX.X\nX.X\nX.X\n"

// cut off from the exit by the wall in the middle column
const walledOffMaze = "5,3\n0,0\n4,0\n..X..\n..X..\n..X..\n"

func writeMaze(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSolveCmd_Text(t *testing.T) {
	out, _, err := run(t, "solve", writeMaze(t, channelMaze))
	require.NoError(t, err)

	want := strings.Join([]string{
		"The unsolved maze: ",
		"The starting position is (0,1) and the end is (2,1), from the upper left.",
		"X.X",
		"X.X",
		"X.X",
		"The solved maze:",
		"The starting position is (0,1) and the end is (2,1), from the upper left.",
		"XWX",
		"XWX",
		"XWX",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("solve output mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveCmd_Errors(t *testing.T) {
	t.Run("no file given", func(t *testing.T) {
		_, _, err := run(t, "solve")
		assert.ErrorIs(t, err, errNoMaze)
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.txt")
		_, _, err := run(t, "solve", path)
		require.Error(t, err)
		assert.Equal(t, `The file you tried to open, "`+path+`" doesn't exist.`, err.Error())
	})

	t.Run("malformed file", func(t *testing.T) {
		_, _, err := run(t, "solve", writeMaze(t, "3,3\n0,0\n"))
		assert.ErrorIs(t, err, loader.ErrInvalidDescriptor)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := run(t, "solve", "--format", "xml", writeMaze(t, channelMaze))
		assert.ErrorIs(t, err, errUnknownFormat)
	})

	t.Run("step budget", func(t *testing.T) {
		out, _, err := run(t, "solve", "--max-steps", "20", writeMaze(t, walledOffMaze))
		assert.ErrorIs(t, err, service.ErrUnsolved)
		assert.Contains(t, out, "The maze after 20 steps:")
		assert.NotContains(t, out, "The solved maze:")
	})
}

func TestSolveCmd_Formats(t *testing.T) {
	path := writeMaze(t, channelMaze)

	t.Run("json", func(t *testing.T) {
		out, _, err := run(t, "solve", "--format", "json", path)
		require.NoError(t, err)

		var sol dmn.Solution
		require.NoError(t, json.Unmarshal([]byte(out), &sol))
		assert.True(t, sol.Solved)
		assert.Equal(t, 2, sol.Steps)
		assert.Equal(t, []string{"XWX", "XWX", "XWX"}, sol.Path)
	})

	t.Run("yaml", func(t *testing.T) {
		out, _, err := run(t, "solve", "-o", "yaml", path)
		require.NoError(t, err)

		var sol dmn.Solution
		require.NoError(t, yaml.Unmarshal([]byte(out), &sol))
		assert.True(t, sol.Solved)
		assert.Equal(t, []string{"X.X", "X.X", "X.X"}, sol.Unsolved)
	})

	t.Run("unsolved json still printed", func(t *testing.T) {
		out, _, err := run(t, "solve", "--format", "json", "--max-steps", "5", writeMaze(t, walledOffMaze))
		assert.ErrorIs(t, err, service.ErrUnsolved)

		var sol dmn.Solution
		require.NoError(t, json.Unmarshal([]byte(out), &sol))
		assert.False(t, sol.Solved)
		assert.Equal(t, 5, sol.Steps)
	})
}

func TestSolveCmd_Trace(t *testing.T) {
	_, stderr, err := run(t, "solve", "--trace", writeMaze(t, channelMaze))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[WALKER]")
	assert.Contains(t, lines[0], "step 1: straight")
	assert.Contains(t, lines[1], "step 2: straight")
}

func TestGenerateCmd(t *testing.T) {
	out, _, err := run(t, "generate", "--width", "3", "--height", "2", "--seed", "7")
	require.NoError(t, err)

	d, err := loader.Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 5, d.Rows)
	assert.Equal(t, 7, d.Columns)

	again, _, err := run(t, "generate", "--width", "3", "--height", "2", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	solved, _, err := run(t, "solve", writeMaze(t, out))
	require.NoError(t, err)
	assert.Contains(t, solved, "The solved maze:")

	_, _, err = run(t, "generate", "--width", "0")
	assert.Error(t, err)
}

func TestTokenCmd(t *testing.T) {
	saved := config.Envs
	t.Cleanup(func() { config.Envs = saved })

	config.Envs.JWTSecret = ""
	_, _, err := run(t, "token")
	assert.ErrorIs(t, err, errMissingSecret)

	config.Envs.JWTSecret = "s3cret"
	config.Envs.JWTIssuer = "walker-test"
	out, _, err := run(t, "token", "--subject", "ci")
	require.NoError(t, err)

	claims, err := token.NewJwtService("s3cret", "walker-test").Decode(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ci", claims["sub"])
}

func TestInitAppLogger(t *testing.T) {
	saved := appLogger
	t.Cleanup(func() { appLogger = saved })

	err := initAppLogger(nil)
	assert.ErrorIs(t, err, logger.ErrNilWriter)

	var buf bytes.Buffer
	require.NoError(t, initAppLogger(&buf))
	appLogger.Info("ready")
	assert.Contains(t, buf.String(), "[APP]")
	assert.Contains(t, buf.String(), "ready")
}
