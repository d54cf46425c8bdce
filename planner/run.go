package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-planner/grid"
	"github.com/beka-birhanu/vinom-planner/mdp"
)

// Solver computes a plan from start to goal over a built model.
// Implementations return mdp.ErrNoPlan when the goal cannot be reached
// within horizon.
type Solver interface {
	Resolve(ctx context.Context, model *mdp.Model, start, goal *grid.State, horizon int) (mdp.Plan, error)
}

// Outcome is the result of one planning run.
type Outcome struct {
	Build *Result
	Plan  mdp.Plan
	Path  mdp.Path
	Found bool
}

// Run builds the model for layout, hands it to s and reconstructs the path.
//
// When the solver finds no plan, Run returns the outcome (Found is false) along
// with an error wrapping ErrPlanningFailure, so callers can still report what
// was built.
func Run(ctx context.Context, s Solver, layout *grid.Layout, horizon int) (*Outcome, error) {
	if layout == nil {
		return nil, fmt.Errorf("%w: no layout", ErrInvalidTopology)
	}

	result, err := Build(layout.Map, layout.Start, layout.Goal)
	if err != nil {
		return nil, err
	}
	outcome := &Outcome{Build: result}

	plan, err := s.Resolve(ctx, result.Model, result.Start, result.Goal, horizon)
	if err != nil {
		if errors.Is(err, mdp.ErrNoPlan) {
			return outcome, fmt.Errorf("%w: %v", ErrPlanningFailure, err)
		}
		return nil, err
	}

	path, err := ToPath(plan)
	if err != nil {
		return nil, err
	}

	outcome.Plan = plan
	outcome.Path = path
	outcome.Found = true
	return outcome, nil
}
