package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-planner/display"
	"github.com/beka-birhanu/vinom-planner/grid"
	"github.com/beka-birhanu/vinom-planner/planner"
	"github.com/beka-birhanu/vinom-planner/solver"
	"github.com/spf13/cobra"
)

const noPlanMessage = "No plan could be found."

func runSolve(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening map: %w", err)
	}
	defer f.Close()

	layout, err := grid.Parse(f)
	if err != nil {
		return err
	}
	if exclusiveBounds {
		layout.Map = layout.Map.WithBounds(grid.BoundsExclusive)
	}

	out := cmd.OutOrStdout()
	opts := display.Options{Color: colorOutput && display.IsTerminal(out)}

	outcome, err := planner.Run(cmd.Context(), solver.New(discount), layout, horizon)
	if errors.Is(err, planner.ErrPlanningFailure) {
		if err := display.Render(out, layout, nil, opts); err != nil {
			return err
		}
		fmt.Fprintln(out, noPlanMessage)
		return nil
	}
	if err != nil {
		return err
	}

	if err := display.Render(out, layout, &outcome.Path, opts); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n%d steps, %d states\n", outcome.Path.String(), len(outcome.Path.Directions), outcome.Build.Model.Len())
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	seed := mazeSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	maze, err := grid.Generate(mazeWidth, mazeHeight, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), maze.String())
	return err
}
