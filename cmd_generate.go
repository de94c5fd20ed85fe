package main

import (
	"time"

	"github.com/beka-birhanu/vinom-walker/loader"
	"github.com/beka-birhanu/vinom-walker/maze"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	width  int
	height int
	seed   int64
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random perfect maze in the descriptor format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				flags.seed = time.Now().UnixNano()
			}
			d, err := maze.Generate(flags.width, flags.height, flags.seed)
			if err != nil {
				return err
			}
			return loader.Format(cmd.OutOrStdout(), d)
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.width, "width", 10, "Number of cells across")
	f.IntVar(&flags.height, "height", 10, "Number of cells down")
	f.Int64Var(&flags.seed, "seed", 0, "Random seed, defaults to the current time")
	return cmd
}
