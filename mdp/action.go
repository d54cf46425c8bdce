// Package mdp describes deterministic decision models over grid states:
// the movement actions, the transition and reward functions, and the plans
// a solver produces from them.
package mdp

import (
	"fmt"
	"strings"
)

// Action is a deterministic movement command.
type Action int

const (
	Still Action = iota
	North
	East
	South
	West
)

// Moves lists the four movement actions in the order neighbours are explored.
var Moves = [4]Action{North, East, South, West}

var actionNames = [...]string{
	Still: "STILL",
	North: "NORTH",
	East:  "EAST",
	South: "SOUTH",
	West:  "WEST",
}

// String returns the upper-case action label.
func (a Action) String() string {
	if a < Still || a > West {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Opposite returns the geometric opposite of a movement.
// Still is its own opposite.
func (a Action) Opposite() Action {
	switch a {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return Still
	}
}

// Delta returns the coordinate offset of one step in direction a.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// ParseAction converts a label produced by String back into an Action.
func ParseAction(s string) (Action, error) {
	for a, name := range actionNames {
		if strings.EqualFold(s, name) {
			return Action(a), nil
		}
	}
	return Still, fmt.Errorf("mdp: unknown action %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
