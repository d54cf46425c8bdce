package planner

import (
	"fmt"

	"github.com/beka-birhanu/vinom-planner/grid"
	"github.com/beka-birhanu/vinom-planner/mdp"
)

// Rewards assigned by the builder. The goal is absorbing and free; every
// other state costs one step.
const (
	GoalReward = 0.0
	StepReward = -1.0
)

// EdgeCase identifies which endpoints of a traversal edge are the start or the goal.
type EdgeCase int

const (
	EdgeFromGoal    EdgeCase = iota + 1 // current is goal, available is not start
	EdgeFromStart                       // current is start, available is not goal
	EdgeIntoGoal                        // available is goal
	EdgeIntoStart                       // available is start, current is not goal
	EdgeGoalToStart                     // current is goal, available is start
	EdgeStartToGoal                     // current is start, available is goal
	EdgeOrdinary                        // neither endpoint is start or goal
)

var edgeCaseNames = map[EdgeCase]string{
	EdgeFromGoal:    "from-goal",
	EdgeFromStart:   "from-start",
	EdgeIntoGoal:    "into-goal",
	EdgeIntoStart:   "into-start",
	EdgeGoalToStart: "goal-to-start",
	EdgeStartToGoal: "start-to-goal",
	EdgeOrdinary:    "ordinary",
}

func (c EdgeCase) String() string {
	if name, ok := edgeCaseNames[c]; ok {
		return name
	}
	return fmt.Sprintf("EdgeCase(%d)", int(c))
}

// classify picks the edge case for the edge current-available. The tests run
// in priority order, so the first match wins.
func classify(goal, start, current, available grid.Coordinate) EdgeCase {
	currentIsGoal, currentIsStart := current == goal, current == start
	availableIsGoal, availableIsStart := available == goal, available == start

	switch {
	case currentIsGoal && !availableIsStart:
		return EdgeFromGoal
	case currentIsStart && !availableIsGoal:
		return EdgeFromStart
	case availableIsGoal:
		return EdgeIntoGoal
	case availableIsStart && !currentIsGoal:
		return EdgeIntoStart
	case currentIsGoal && availableIsStart:
		return EdgeGoalToStart
	case currentIsStart && availableIsGoal:
		// Shadowed by EdgeIntoGoal.
		return EdgeStartToGoal
	default:
		return EdgeOrdinary
	}
}

// link classifies the edge and inserts its transition pair and rewards.
// direction leads from available back to current.
func (b *builder) link(current, available *grid.State, direction mdp.Action) EdgeCase {
	ec := classify(b.goal.Coordinate(), b.start.Coordinate(), current.Coordinate(), available.Coordinate())

	switch ec {
	case EdgeFromGoal:
		b.pair(available, direction, b.goal)
		b.model.SetReward(b.goal, GoalReward)
		b.model.SetReward(available, StepReward)
	case EdgeFromStart:
		b.pair(available, direction, b.start)
		b.model.SetReward(b.start, StepReward)
		b.model.SetReward(available, StepReward)
		b.startFound = true
	case EdgeIntoGoal:
		b.pair(b.goal, direction, current)
		b.model.SetReward(current, StepReward)
		b.model.SetReward(b.goal, GoalReward)
	case EdgeIntoStart:
		b.pair(b.start, direction, current)
		b.model.SetReward(current, StepReward)
		b.model.SetReward(b.start, StepReward)
		b.startFound = true
	case EdgeGoalToStart:
		b.pair(b.start, direction, b.goal)
		b.model.SetReward(b.goal, GoalReward)
		b.model.SetReward(b.start, StepReward)
		b.startFound = true
	case EdgeStartToGoal:
		b.pair(b.goal, direction, b.start)
		b.model.SetReward(b.start, StepReward)
		b.model.SetReward(b.goal, GoalReward)
		b.startFound = true
	case EdgeOrdinary:
		b.pair(available, direction, current)
		b.model.SetReward(current, StepReward)
		b.model.SetReward(available, StepReward)
	}

	b.cases[ec]++
	return ec
}

// pair inserts from -d-> to and its reverse to -opposite(d)-> from.
func (b *builder) pair(from *grid.State, d mdp.Action, to *grid.State) {
	b.model.AddTransition(from, d, to)
	b.model.AddTransition(to, d.Opposite(), from)
}
