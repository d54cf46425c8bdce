package main

import (
	"github.com/beka-birhanu/vinom-planner/solver"
	"github.com/spf13/cobra"
)

var (
	horizon         int
	discount        float64
	exclusiveBounds bool
	colorOutput     bool

	mazeWidth  int
	mazeHeight int
	mazeSeed   int64

	rootCmd = &cobra.Command{
		Use:           "vinom-planner",
		Short:         "Plan shortest routes through grid maps",
		SilenceUsage:  true,
	}

	solveCmd = &cobra.Command{
		Use:   "solve [map file]",
		Short: "Build the decision model of a map and print the planned path",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Print a random maze in the map format",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the planning HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
)

func init() {
	solveCmd.Flags().IntVar(&horizon, "horizon", solver.DefaultHorizon, "maximum solver sweeps and path length")
	solveCmd.Flags().Float64Var(&discount, "discount", solver.DefaultDiscount, "value iteration discount factor")
	solveCmd.Flags().BoolVar(&exclusiveBounds, "exclusive-bounds", false, "treat width and height as exclusive bounds")
	solveCmd.Flags().BoolVar(&colorOutput, "color", false, "colour the rendered map")

	generateCmd.Flags().IntVar(&mazeWidth, "width", 8, "maze width in cells")
	generateCmd.Flags().IntVar(&mazeHeight, "height", 8, "maze height in cells")
	generateCmd.Flags().Int64Var(&mazeSeed, "seed", 0, "random seed, 0 picks one from the clock")

	rootCmd.AddCommand(solveCmd, generateCmd, serveCmd)
}
