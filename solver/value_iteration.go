// Package solver provides a value-iteration solver for deterministic grid models.
package solver

import (
	"context"
	"fmt"
	"math"

	"github.com/beka-birhanu/vinom-planner/grid"
	"github.com/beka-birhanu/vinom-planner/mdp"
)

const (
	DefaultDiscount = 0.9
	DefaultHorizon  = 200

	convergenceThreshold = 1e-9
)

// rolloutOrder breaks ties between equally valued successors.
var rolloutOrder = [...]mdp.Action{mdp.North, mdp.East, mdp.South, mdp.West, mdp.Still}

// ValueIteration solves a model by synchronous value iteration followed by a
// greedy rollout from the start state. The goal is held absorbing.
type ValueIteration struct {
	Discount float64
}

// New returns a solver with the given discount; values outside (0, 1] fall
// back to DefaultDiscount.
func New(discount float64) *ValueIteration {
	if discount <= 0 || discount > 1 {
		discount = DefaultDiscount
	}
	return &ValueIteration{Discount: discount}
}

// Resolve runs at most horizon sweeps and a rollout of at most horizon steps.
func (v *ValueIteration) Resolve(ctx context.Context, model *mdp.Model, start, goal *grid.State, horizon int) (mdp.Plan, error) {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	if !model.Contains(start) {
		return mdp.Plan{}, fmt.Errorf("%w: start %s is not part of the model", mdp.ErrNoPlan, start)
	}
	if !model.Contains(goal) {
		return mdp.Plan{}, fmt.Errorf("%w: goal %s is not part of the model", mdp.ErrNoPlan, goal)
	}

	values, err := v.evaluate(ctx, model, goal, horizon)
	if err != nil {
		return mdp.Plan{}, err
	}
	return rollout(model, values, start, goal, horizon)
}

// Values exposes the state values after at most horizon sweeps.
func (v *ValueIteration) Values(ctx context.Context, model *mdp.Model, goal *grid.State, horizon int) (map[*grid.State]float64, error) {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	return v.evaluate(ctx, model, goal, horizon)
}

func (v *ValueIteration) evaluate(ctx context.Context, model *mdp.Model, goal *grid.State, horizon int) (map[*grid.State]float64, error) {
	states := model.States()
	values := make(map[*grid.State]float64, len(states))

	for sweep := 0; sweep < horizon; sweep++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next := make(map[*grid.State]float64, len(states))
		delta := 0.0
		for _, s := range states {
			reward, _ := model.Reward(s)
			if s == goal {
				next[s] = reward
				continue
			}

			best := math.Inf(-1)
			for _, a := range model.Actions(s) {
				to, _ := model.Next(s, a)
				best = math.Max(best, values[to])
			}
			if math.IsInf(best, -1) {
				best = 0
			}
			next[s] = reward + v.Discount*best
			delta = math.Max(delta, math.Abs(next[s]-values[s]))
		}

		values = next
		if delta < convergenceThreshold {
			break
		}
	}

	return values, nil
}

func rollout(model *mdp.Model, values map[*grid.State]float64, start, goal *grid.State, horizon int) (mdp.Plan, error) {
	var plan mdp.Plan
	current := start

	for len(plan.Steps) < horizon {
		if current == goal {
			return plan, nil
		}

		bestAction, bestNext := mdp.Still, (*grid.State)(nil)
		bestValue := math.Inf(-1)
		for _, a := range rolloutOrder {
			to, ok := model.Next(current, a)
			if !ok {
				continue
			}
			if values[to] > bestValue {
				bestAction, bestNext, bestValue = a, to, values[to]
			}
		}

		if bestNext == nil || bestNext == current {
			return mdp.Plan{}, fmt.Errorf("%w: stuck at %s", mdp.ErrNoPlan, current)
		}

		plan.Steps = append(plan.Steps, mdp.Step{State: current, Action: bestAction})
		current = bestNext
	}

	if current == goal {
		return plan, nil
	}
	return mdp.Plan{}, fmt.Errorf("%w: goal not reached within %d steps", mdp.ErrNoPlan, horizon)
}
