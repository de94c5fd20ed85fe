// Package loader reads and writes the text maze descriptor format.
//
// A descriptor starts with three "C,R" lines (columns first) giving the
// maze size, the entry and the exit. R lines of exactly C characters follow,
// where 'X' is a wall and any other character is open.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beka-birhanu/vinom-walker/maze"
)

const (
	maxLineLength = 1 << 20
	// initialRows caps the body preallocation; the header's row count is
	// untrusted until that many rows have been read.
	initialRows = 64
)

var (
	ErrInvalidDescriptor = errors.New("invalid maze descriptor")
)

// ParseFile opens path and parses the descriptor it holds.
func ParseFile(path string) (*maze.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a descriptor from r. Lines after the last body row are ignored.
func Parse(r io.Reader) (*maze.Descriptor, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	headers := [...]string{"dimensions", "entry", "exit"}
	var pairs [len(headers)][2]int
	for i, name := range headers {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: missing %s line", ErrInvalidDescriptor, name)
		}
		cols, rows, err := parsePair(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrInvalidDescriptor, name, err)
		}
		pairs[i] = [2]int{cols, rows}
	}

	d := &maze.Descriptor{
		Columns: pairs[0][0],
		Rows:    pairs[0][1],
		Entry:   maze.Position{Row: pairs[1][1], Col: pairs[1][0]},
		Exit:    maze.Position{Row: pairs[2][1], Col: pairs[2][0]},
	}
	if d.Rows <= 0 || d.Columns <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %d,%d", ErrInvalidDescriptor, d.Columns, d.Rows)
	}

	d.Body = make([]string, 0, min(d.Rows, initialRows))
	for len(d.Body) < d.Rows && scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if len(line) != d.Columns {
			return nil, fmt.Errorf("%w: row %d has %d characters, want %d", ErrInvalidDescriptor, len(d.Body), len(line), d.Columns)
		}
		d.Body = append(d.Body, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(d.Body) < d.Rows {
		return nil, fmt.Errorf("%w: truncated body, %d of %d rows", ErrInvalidDescriptor, len(d.Body), d.Rows)
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
	}
	return d, nil
}

// Format writes d in the descriptor format Parse reads.
func Format(w io.Writer, d *maze.Descriptor) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d,%d\n", d.Columns, d.Rows)
	fmt.Fprintf(bw, "%d,%d\n", d.Entry.Col, d.Entry.Row)
	fmt.Fprintf(bw, "%d,%d\n", d.Exit.Col, d.Exit.Row)
	for _, line := range d.Body {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// parsePair parses an "a,b" line into its two integers.
func parsePair(line string) (int, int, error) {
	fields := strings.Split(strings.TrimSpace(strings.TrimSuffix(line, "\r")), ",")
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want two comma separated integers, got %q", line)
	}
	a, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad integer %q", fields[0])
	}
	b, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad integer %q", fields[1])
	}
	return a, b, nil
}
