package grid

// State is the decision-process state of one free cell.
// The planner keeps exactly one *State per coordinate, so states are compared
// by pointer identity once they enter a model.
type State struct {
	coord Coordinate
}

// NewState wraps c in a new state.
func NewState(c Coordinate) *State {
	return &State{coord: c}
}

// Coordinate returns the cell the state stands for.
func (s *State) Coordinate() Coordinate {
	return s.coord
}

// Neighbors returns the four orthogonal neighbour coordinates in
// north, east, south, west order.
func (s *State) Neighbors() [4]Coordinate {
	return [4]Coordinate{s.coord.North(), s.coord.East(), s.coord.South(), s.coord.West()}
}

// String renders the state by its coordinate.
func (s *State) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.coord.String()
}
