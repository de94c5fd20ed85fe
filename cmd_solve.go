package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/beka-birhanu/vinom-walker/config"
	"github.com/beka-birhanu/vinom-walker/loader"
	"github.com/beka-birhanu/vinom-walker/logger"
	"github.com/beka-birhanu/vinom-walker/maze"
	"github.com/beka-birhanu/vinom-walker/service"
	"github.com/beka-birhanu/vinom-walker/walker"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	errNoMaze        = errors.New("no maze name was entered")
	errUnknownFormat = errors.New("unknown output format")
)

type solveFlags struct {
	maxSteps int
	trace    bool
	format   string
}

func newSolveCmd() *cobra.Command {
	var flags solveFlags
	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Walk a maze file and print it before and after solving",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errNoMaze
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], &flags)
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.maxSteps, "max-steps", config.Envs.MaxSteps, "Give up after this many steps, 0 walks until the exit")
	f.BoolVar(&flags.trace, "trace", false, "Log every step of the walk to stderr")
	f.StringVarP(&flags.format, "format", "o", "text", "Output format: text, json or yaml")
	return cmd
}

func runSolve(cmd *cobra.Command, path string, flags *solveFlags) error {
	d, err := loader.ParseFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("The file you tried to open, \"%s\" doesn't exist.", path)
		}
		return err
	}

	opts := &walker.Options{MaxSteps: flags.maxSteps}
	if flags.trace {
		traceLogger, err := logger.New("WALKER", config.ColorMagenta, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		opts.OnStep = func(step int, from, to walker.State, rule walker.Rule) {
			traceLogger.Info(fmt.Sprintf("step %d: %s from %v facing %s to %v facing %s",
				step, rule, from.Position, from.Heading, to.Position, to.Heading))
		}
	}

	out := cmd.OutOrStdout()
	switch flags.format {
	case "text":
		return solveText(out, d, opts)
	case "json", "yaml":
		sol, err := service.Walk(d, opts)
		if err != nil {
			return err
		}
		if flags.format == "json" {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			err = enc.Encode(sol)
		} else {
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			err = enc.Encode(sol)
			if err == nil {
				err = enc.Close()
			}
		}
		if err != nil {
			return err
		}
		if !sol.Solved {
			return fmt.Errorf("%w: %s", service.ErrUnsolved, sol.Reason)
		}
		return nil
	default:
		return fmt.Errorf("%w %q, want text, json or yaml", errUnknownFormat, flags.format)
	}
}

// solveText prints the maze, walks it and prints it again with the path.
func solveText(out io.Writer, d *maze.Descriptor, opts *walker.Options) error {
	g, err := maze.New(d)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "The unsolved maze: \n")
	printPositions(out, d)
	if _, err := g.WriteTo(out); err != nil {
		return err
	}

	res, solveErr := walker.New(g, opts).Solve(d.Entry, d.Exit)
	if solveErr != nil && res == nil {
		return solveErr
	}

	if solveErr != nil {
		fmt.Fprintf(out, "The maze after %d steps:\n", res.Steps)
	} else {
		fmt.Fprintf(out, "The solved maze:\n")
	}
	printPositions(out, d)
	if _, err := g.WriteTo(out); err != nil {
		return err
	}
	if solveErr != nil {
		return fmt.Errorf("%w: %w", service.ErrUnsolved, solveErr)
	}
	return nil
}

func printPositions(out io.Writer, d *maze.Descriptor) {
	fmt.Fprintf(out, "The starting position is (%d,%d) and the end is (%d,%d), from the upper left.\n",
		d.Entry.Row, d.Entry.Col, d.Exit.Row, d.Exit.Col)
}
