package grid

import (
	"errors"
	"math/rand"
	"strings"
)

const (
	maxMazeDimension = 64
)

var (
	ErrInvalidDimension = errors.New("grid: invalid maze dimensions")

	// mazeSteps lists cell-to-cell moves in a fixed order so a seeded
	// generator always produces the same maze.
	mazeSteps = [4]Coordinate{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
)

// Maze is a perfect maze of Width×Height cells produced with Wilson's algorithm.
// Every cell is reachable from every other cell through exactly one route.
type Maze struct {
	Width  int
	Height int
	open   map[[2]Coordinate]struct{} // passages between adjacent cells
	rng    *rand.Rand
}

// Generate builds a new maze. rng drives every random choice; pass a seeded
// source for reproducible output. The maze needs at least two cells so start
// and goal differ.
func Generate(width, height int, rng *rand.Rand) (*Maze, error) {
	if min(width, height) <= 0 || max(width, height) > maxMazeDimension || width*height < 2 {
		return nil, ErrInvalidDimension
	}
	m := &Maze{
		Width:  width,
		Height: height,
		open:   make(map[[2]Coordinate]struct{}),
		rng:    rng,
	}
	m.generate()
	return m, nil
}

func (m *Maze) inside(c Coordinate) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

func (m *Maze) neighbors(c Coordinate) []Coordinate {
	result := make([]Coordinate, 0, 4)
	for _, d := range mazeSteps {
		n := c.Translate(d.X, d.Y)
		if m.inside(n) {
			result = append(result, n)
		}
	}
	return result
}

func (m *Maze) randomCell() Coordinate {
	return Coordinate{X: m.rng.Intn(m.Width), Y: m.rng.Intn(m.Height)}
}

func (m *Maze) randomUnvisitedCell(visited map[Coordinate]struct{}) Coordinate {
	for {
		c := m.randomCell()
		if _, included := visited[c]; !included {
			return c
		}
	}
}

func passage(a, b Coordinate) [2]Coordinate {
	if a.Y < b.Y || (a.Y == b.Y && a.X < b.X) {
		return [2]Coordinate{a, b}
	}
	return [2]Coordinate{b, a}
}

// Open reports whether the wall between adjacent cells a and b is down.
func (m *Maze) Open(a, b Coordinate) bool {
	_, ok := m.open[passage(a, b)]
	return ok
}

// randomWalk walks from an unvisited cell until it hits the visited tree and
// returns the last exit taken from every cell it passed through. Following the
// exits from the walk's start yields the loop-erased path.
func (m *Maze) randomWalk(start Coordinate, visited map[Coordinate]struct{}) map[Coordinate]Coordinate {
	exits := make(map[Coordinate]Coordinate)
	cell := start
	for {
		neighbors := m.neighbors(cell)
		next := neighbors[m.rng.Intn(len(neighbors))]
		exits[cell] = next
		if _, included := visited[next]; included {
			return exits
		}
		cell = next
	}
}

func (m *Maze) generate() {
	visited := make(map[Coordinate]struct{}, m.Width*m.Height)
	visited[m.randomCell()] = struct{}{}

	for len(visited) < m.Width*m.Height {
		start := m.randomUnvisitedCell(visited)
		exits := m.randomWalk(start, visited)
		for cell := start; ; {
			next := exits[cell]
			m.open[passage(cell, next)] = struct{}{}
			visited[cell] = struct{}{}
			if _, done := visited[next]; done {
				break
			}
			cell = next
		}
	}
}

// Rows rasterises the maze into map rows: each cell becomes a free character
// at (2x+1, 2y+1), walls become '#'. The start sits in the top-left cell and the
// goal in the bottom-right cell.
func (m *Maze) Rows() []string {
	w, h := 2*m.Width+1, 2*m.Height+1
	canvas := make([][]byte, h)
	for y := range canvas {
		canvas[y] = []byte(strings.Repeat(string(ObstacleSymbol), w))
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			cell := Coordinate{X: x, Y: y}
			canvas[2*y+1][2*x+1] = ' '
			if east := cell.East(); m.inside(east) && m.Open(cell, east) {
				canvas[2*y+1][2*x+2] = ' '
			}
			if south := cell.South(); m.inside(south) && m.Open(cell, south) {
				canvas[2*y+2][2*x+1] = ' '
			}
		}
	}
	canvas[1][1] = StartSymbol
	canvas[2*m.Height-1][2*m.Width-1] = GoalSymbol

	rows := make([]string, h)
	for y, line := range canvas {
		rows[y] = string(line)
	}
	return rows
}

// String returns the rasterised maze in the text map format.
func (m *Maze) String() string {
	return strings.Join(m.Rows(), "\n") + "\n"
}
