package mdp

import (
	"errors"

	"github.com/beka-birhanu/vinom-planner/grid"
)

// ErrNoPlan is returned by solvers that cannot reach the goal.
var ErrNoPlan = errors.New("mdp: no plan found")

type transitionKey struct {
	from   *grid.State
	action Action
}

// Model is a deterministic decision model: a transition function
// (state, action) -> state and a reward function state -> value.
// The state set is every state that appears in a transition.
//
// A Model is built once and then only read; it is not safe for concurrent
// writes.
type Model struct {
	transitions map[transitionKey]*grid.State
	rewards     map[*grid.State]float64
	states      []*grid.State
	known       map[*grid.State]struct{}
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{
		transitions: make(map[transitionKey]*grid.State),
		rewards:     make(map[*grid.State]float64),
		known:       make(map[*grid.State]struct{}),
	}
}

func (m *Model) register(s *grid.State) {
	if _, ok := m.known[s]; ok {
		return
	}
	m.known[s] = struct{}{}
	m.states = append(m.states, s)
}

// AddTransition records that taking a in from leads to to.
// Re-adding the same triple is a no-op; a later call for the same
// (from, a) overwrites the destination.
func (m *Model) AddTransition(from *grid.State, a Action, to *grid.State) {
	m.register(from)
	m.register(to)
	m.transitions[transitionKey{from: from, action: a}] = to
}

// SetReward assigns the reward of s. Setting the same value twice is harmless.
func (m *Model) SetReward(s *grid.State, r float64) {
	m.rewards[s] = r
}

// Next returns the state reached by taking a in s.
func (m *Model) Next(s *grid.State, a Action) (*grid.State, bool) {
	to, ok := m.transitions[transitionKey{from: s, action: a}]
	return to, ok
}

// Reward returns the reward of s and whether one was assigned.
func (m *Model) Reward(s *grid.State) (float64, bool) {
	r, ok := m.rewards[s]
	return r, ok
}

// Actions returns the actions available in s, movements first then Still.
func (m *Model) Actions(s *grid.State) []Action {
	var actions []Action
	for _, a := range Moves {
		if _, ok := m.transitions[transitionKey{from: s, action: a}]; ok {
			actions = append(actions, a)
		}
	}
	if _, ok := m.transitions[transitionKey{from: s, action: Still}]; ok {
		actions = append(actions, Still)
	}
	return actions
}

// Contains reports whether s takes part in any transition.
func (m *Model) Contains(s *grid.State) bool {
	_, ok := m.known[s]
	return ok
}

// States returns the model's states in first-seen order.
func (m *Model) States() []*grid.State {
	return m.states
}

// Len returns the number of states.
func (m *Model) Len() int {
	return len(m.states)
}

// TransitionCount returns the number of (state, action) pairs defined.
func (m *Model) TransitionCount() int {
	return len(m.transitions)
}
