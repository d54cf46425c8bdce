/*
Package grid holds the spatial vocabulary of the planner: integer coordinates,
the states that wrap them, obstacle maps, the text map format and a maze
generator used to produce test maps.

Coordinates follow screen orientation: x grows to the east, y grows to the south.
*/
package grid

import "fmt"

// Coordinate is an immutable integer position on the grid.
// It is compared and hashed by value.
type Coordinate struct {
	X int `json:"x" bson:"x"` // Column index
	Y int `json:"y" bson:"y"` // Row index
}

// North returns the coordinate one row up.
func (c Coordinate) North() Coordinate { return Coordinate{X: c.X, Y: c.Y - 1} }

// East returns the coordinate one column right.
func (c Coordinate) East() Coordinate { return Coordinate{X: c.X + 1, Y: c.Y} }

// South returns the coordinate one row down.
func (c Coordinate) South() Coordinate { return Coordinate{X: c.X, Y: c.Y + 1} }

// West returns the coordinate one column left.
func (c Coordinate) West() Coordinate { return Coordinate{X: c.X - 1, Y: c.Y} }

// Translate returns the coordinate shifted by (dx, dy).
func (c Coordinate) Translate(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
