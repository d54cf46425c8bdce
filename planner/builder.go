/*
Package planner turns an obstacle map into a decision model and a solved plan
back into a path.

Build runs a stack-based flood fill seeded at the goal. Every reachable free
cell gets exactly one state, every edge between two reachable cells gets a
transition in both directions, and rewards are 0 for the goal and -1 for every
other state. When the fill never touches the start, the start is added as an
isolated state with a Still self-loop so the solver can still be asked about it.
*/
package planner

import (
	"fmt"

	"github.com/beka-birhanu/vinom-planner/grid"
	"github.com/beka-birhanu/vinom-planner/mdp"
)

// Result is a built model together with what the fill learned about it.
type Result struct {
	Model      *mdp.Model
	Start      *grid.State
	Goal       *grid.State
	StartFound bool             // an edge touching the start was processed
	Visited    int              // cells processed by the fill
	Cases      map[EdgeCase]int // classifier branches taken
}

// builder is the state of one Build call. Nothing in it outlives the call.
type builder struct {
	om         *grid.ObstacleMap
	model      *mdp.Model
	start      *grid.State
	goal       *grid.State
	known      map[grid.Coordinate]*grid.State
	visited    map[grid.Coordinate]struct{}
	unchecked  []*grid.State
	startFound bool
	cases      map[EdgeCase]int
}

// Validate checks that start and goal are distinct free cells inside om.
func Validate(om *grid.ObstacleMap, start, goal grid.Coordinate) error {
	if om == nil {
		return fmt.Errorf("%w: no obstacle map", ErrInvalidTopology)
	}
	if start == goal {
		return fmt.Errorf("%w: start and goal are both %s", ErrInvalidTopology, start)
	}
	for _, end := range []struct {
		name  string
		coord grid.Coordinate
	}{{"start", start}, {"goal", goal}} {
		if !om.InBounds(end.coord) {
			return fmt.Errorf("%w: %s %s is out of bounds", ErrInvalidTopology, end.name, end.coord)
		}
		if om.IsObstacle(end.coord) {
			return fmt.Errorf("%w: %s %s is an obstacle", ErrInvalidTopology, end.name, end.coord)
		}
	}
	return nil
}

// Build constructs the decision model for om with the given start and goal.
func Build(om *grid.ObstacleMap, start, goal grid.Coordinate) (*Result, error) {
	if err := Validate(om, start, goal); err != nil {
		return nil, err
	}

	b := &builder{
		om:      om,
		model:   mdp.NewModel(),
		known:   make(map[grid.Coordinate]*grid.State),
		visited: make(map[grid.Coordinate]struct{}),
		cases:   make(map[EdgeCase]int),
	}
	b.goal = b.resolve(goal)
	b.start = b.resolve(start)
	b.fill()

	return &Result{
		Model:      b.model,
		Start:      b.start,
		Goal:       b.goal,
		StartFound: b.startFound,
		Visited:    len(b.visited),
		Cases:      b.cases,
	}, nil
}

// resolve returns the state registered for c, creating it on first sight.
func (b *builder) resolve(c grid.Coordinate) *grid.State {
	if s, ok := b.known[c]; ok {
		return s
	}
	s := grid.NewState(c)
	b.known[c] = s
	return s
}

func (b *builder) push(s *grid.State) {
	b.unchecked = append(b.unchecked, s)
}

func (b *builder) pop() *grid.State {
	last := len(b.unchecked) - 1
	s := b.unchecked[last]
	b.unchecked = b.unchecked[:last]
	return s
}

func (b *builder) fill() {
	b.model.AddTransition(b.goal, mdp.Still, b.goal)
	b.push(b.goal)

	for len(b.unchecked) > 0 {
		current := b.pop()
		// A cell can be pushed by several neighbours before it is popped.
		// Its edges are all inserted the first time, so later copies are dropped.
		if _, done := b.visited[current.Coordinate()]; done {
			continue
		}
		b.visited[current.Coordinate()] = struct{}{}

		for _, n := range current.Neighbors() {
			if b.om.IsObstacle(n) {
				continue
			}
			if _, done := b.visited[n]; done || !b.om.InBounds(n) {
				continue
			}
			available := b.resolve(n)
			b.link(current, available, returnDirection(current.Coordinate(), n))
			b.push(available)
		}
	}

	// An isolated goal has no edge to carry its reward.
	if _, ok := b.model.Reward(b.goal); !ok {
		b.model.SetReward(b.goal, GoalReward)
	}

	if !b.startFound {
		b.model.AddTransition(b.start, mdp.Still, b.start)
		b.model.SetReward(b.start, StepReward)
	}
}

// returnDirection is the move that leads from neighbor back to current.
// Coordinates are compared rather than subtracted.
func returnDirection(current, neighbor grid.Coordinate) mdp.Action {
	if neighbor.Y == current.Y {
		if neighbor.X < current.X {
			return mdp.East
		}
		return mdp.West
	}
	if neighbor.Y < current.Y {
		return mdp.South
	}
	return mdp.North
}
