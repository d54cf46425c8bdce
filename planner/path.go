package planner

import "github.com/beka-birhanu/vinom-planner/mdp"

// ToPath converts a solved plan into directions anchored at the coordinate
// of its first state.
func ToPath(plan mdp.Plan) (mdp.Path, error) {
	if len(plan.Steps) == 0 || plan.Steps[0].State == nil {
		return mdp.Path{}, ErrEmptyPlan
	}

	directions := make([]mdp.Action, len(plan.Steps))
	for i, step := range plan.Steps {
		directions[i] = step.Action
	}

	return mdp.Path{
		Anchor:     plan.Steps[0].State.Coordinate(),
		Directions: directions,
	}, nil
}
