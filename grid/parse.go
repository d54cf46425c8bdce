package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Map symbols.
const (
	ObstacleSymbol = '#'
	StartSymbol    = '@'
	GoalSymbol     = '.'
)

var (
	ErrMalformedMap = errors.New("grid: malformed map")
	ErrNoStart      = errors.New("grid: map has no start cell")
	ErrNoGoal       = errors.New("grid: map has no goal cell")
)

// Layout is a parsed map: the obstacle map plus start and goal coordinates.
type Layout struct {
	Map   *ObstacleMap
	Start Coordinate
	Goal  Coordinate
}

// Parse reads a text map.
//
// Each line is a row. '#' marks an obstacle, '@' the start and '.' the goal.
// The start is the first '@' of the first row containing one; the goal is the
// first '.' in row-major order, later dots are ordinary free cells. Every other
// character is free. Width is the longest row; cells past the end of a short row
// are free.
func Parse(r io.Reader) (*Layout, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMap, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedMap)
	}

	width := 0
	var obstacles []Coordinate
	var start, goal *Coordinate
	for y, row := range rows {
		if len(row) > width {
			width = len(row)
		}
		for x := 0; x < len(row); x++ {
			c := Coordinate{X: x, Y: y}
			switch row[x] {
			case ObstacleSymbol:
				obstacles = append(obstacles, c)
			case StartSymbol:
				if start == nil {
					start = &c
				}
			case GoalSymbol:
				if goal == nil {
					goal = &c
				}
			}
		}
	}

	if start == nil {
		return nil, ErrNoStart
	}
	if goal == nil {
		return nil, ErrNoGoal
	}

	return &Layout{
		Map:   NewObstacleMap(width, len(rows), obstacles...),
		Start: *start,
		Goal:  *goal,
	}, nil
}

// ParseString is Parse over an in-memory map.
func ParseString(s string) (*Layout, error) {
	return Parse(strings.NewReader(s))
}
