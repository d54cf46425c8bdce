package planner

import "errors"

var (
	// ErrInvalidTopology reports a start/goal pair the builder cannot work with:
	// identical, out of bounds or on an obstacle.
	ErrInvalidTopology = errors.New("planner: invalid topology")
	// ErrEmptyPlan reports a plan with no steps, which has no anchor.
	ErrEmptyPlan = errors.New("planner: empty plan")
	// ErrPlanningFailure reports that the solver found no plan.
	ErrPlanningFailure = errors.New("planner: no plan could be found")
)
