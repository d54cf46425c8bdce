package mdp

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-planner/grid"
)

// Step is one state-action pair of a plan.
type Step struct {
	State  *grid.State
	Action Action
}

// Plan is the ordered state-action sequence a solver returns.
type Plan struct {
	Steps []Step
}

// Len returns the number of steps.
func (p Plan) Len() int {
	return len(p.Steps)
}

// Path is a movement sequence anchored at a coordinate.
type Path struct {
	Anchor     grid.Coordinate `json:"anchor" bson:"anchor"`
	Directions []Action        `json:"directions" bson:"directions"`
}

// Cells returns every coordinate the path occupies, anchor first.
func (p Path) Cells() []grid.Coordinate {
	cells := make([]grid.Coordinate, 0, len(p.Directions)+1)
	at := p.Anchor
	cells = append(cells, at)
	for _, d := range p.Directions {
		dx, dy := d.Delta()
		at = at.Translate(dx, dy)
		cells = append(cells, at)
	}
	return cells
}

// End returns the coordinate the path finishes on.
func (p Path) End() grid.Coordinate {
	cells := p.Cells()
	return cells[len(cells)-1]
}

// String renders the path as "(x,y): EAST, SOUTH".
func (p Path) String() string {
	labels := make([]string, len(p.Directions))
	for i, d := range p.Directions {
		labels[i] = d.String()
	}
	return fmt.Sprintf("%s: %s", p.Anchor, strings.Join(labels, ", "))
}
