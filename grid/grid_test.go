package grid

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateMoves(t *testing.T) {
	c := Coordinate{X: 3, Y: 5}

	assert.Equal(t, Coordinate{X: 3, Y: 4}, c.North())
	assert.Equal(t, Coordinate{X: 4, Y: 5}, c.East())
	assert.Equal(t, Coordinate{X: 3, Y: 6}, c.South())
	assert.Equal(t, Coordinate{X: 2, Y: 5}, c.West())
	assert.Equal(t, Coordinate{X: 1, Y: 7}, c.Translate(-2, 2))
	assert.Equal(t, "(3,5)", c.String())
}

func TestStateNeighborsOrder(t *testing.T) {
	s := NewState(Coordinate{X: 1, Y: 1})

	assert.Equal(t, [4]Coordinate{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}}, s.Neighbors())
	assert.Equal(t, Coordinate{X: 1, Y: 1}, s.Coordinate())

	var none *State
	assert.Equal(t, "<nil>", none.String())
}

func TestInBounds(t *testing.T) {
	om := NewObstacleMap(3, 2)

	tests := []struct {
		name      string
		c         Coordinate
		inclusive bool
		exclusive bool
	}{
		{name: "origin", c: Coordinate{X: 0, Y: 0}, inclusive: true, exclusive: true},
		{name: "last cell", c: Coordinate{X: 2, Y: 1}, inclusive: true, exclusive: true},
		{name: "width edge", c: Coordinate{X: 3, Y: 0}, inclusive: true, exclusive: false},
		{name: "height edge", c: Coordinate{X: 0, Y: 2}, inclusive: true, exclusive: false},
		{name: "past width", c: Coordinate{X: 4, Y: 0}},
		{name: "negative x", c: Coordinate{X: -1, Y: 0}},
		{name: "negative y", c: Coordinate{X: 0, Y: -1}},
	}

	exclusive := om.WithBounds(BoundsExclusive)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inclusive, om.InBounds(tt.c))
			assert.Equal(t, tt.exclusive, exclusive.InBounds(tt.c))
		})
	}

	assert.False(t, om.InBoundsState(nil))
	assert.True(t, om.InBoundsState(NewState(Coordinate{X: 1, Y: 1})))
	assert.Equal(t, BoundsInclusive, om.Bounds, "WithBounds must not change the receiver")
	assert.Equal(t, "exclusive", exclusive.Bounds.String())
	assert.Equal(t, "inclusive", om.Bounds.String())
}

func TestObstacleMap(t *testing.T) {
	om := NewObstacleMap(2, 2, Coordinate{X: 1, Y: 0}, Coordinate{X: 1, Y: 0})

	assert.True(t, om.IsObstacle(Coordinate{X: 1, Y: 0}))
	assert.False(t, om.IsObstacle(Coordinate{X: 0, Y: 0}))
	assert.Equal(t, 1, om.Obstacles())
}

func TestParse(t *testing.T) {
	t.Run("symbols and size", func(t *testing.T) {
		layout, err := ParseString("#@..\n# \n  ##\n")
		require.NoError(t, err)

		assert.Equal(t, 4, layout.Map.Width)
		assert.Equal(t, 3, layout.Map.Height)
		assert.Equal(t, Coordinate{X: 1, Y: 0}, layout.Start)
		assert.Equal(t, Coordinate{X: 2, Y: 0}, layout.Goal)
		assert.Equal(t, 4, layout.Map.Obstacles())
		assert.True(t, layout.Map.IsObstacle(Coordinate{X: 0, Y: 1}))
		assert.True(t, layout.Map.IsObstacle(Coordinate{X: 3, Y: 2}))
		assert.False(t, layout.Map.IsObstacle(Coordinate{X: 3, Y: 1}), "cells past a short row are free")
		assert.Equal(t, BoundsInclusive, layout.Map.Bounds)
	})

	t.Run("first start row wins", func(t *testing.T) {
		layout, err := ParseString(" .\n @@\n@")
		require.NoError(t, err)
		assert.Equal(t, Coordinate{X: 1, Y: 1}, layout.Start)
		assert.Equal(t, Coordinate{X: 1, Y: 0}, layout.Goal)
	})

	t.Run("windows line endings", func(t *testing.T) {
		layout, err := ParseString("@ \r\n .\r\n")
		require.NoError(t, err)
		assert.Equal(t, 2, layout.Map.Width)
		assert.Equal(t, Coordinate{X: 1, Y: 1}, layout.Goal)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := ParseString("")
		assert.ErrorIs(t, err, ErrMalformedMap)

		_, err = ParseString("  .\n##")
		assert.ErrorIs(t, err, ErrNoStart)

		_, err = ParseString("@ \n##")
		assert.ErrorIs(t, err, ErrNoGoal)
	})
}

func TestGenerate(t *testing.T) {
	t.Run("rejects bad dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 3}, {3, -1}, {1, 1}, {65, 2}} {
			_, err := Generate(dims[0], dims[1], rand.New(rand.NewSource(1)))
			assert.ErrorIs(t, err, ErrInvalidDimension, "%v", dims)
		}
	})

	t.Run("seeded mazes repeat", func(t *testing.T) {
		a, err := Generate(6, 4, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		b, err := Generate(6, 4, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("perfect maze rasterises to a parsable map", func(t *testing.T) {
		const w, h = 5, 3
		maze, err := Generate(w, h, rand.New(rand.NewSource(7)))
		require.NoError(t, err)

		rows := maze.Rows()
		require.Len(t, rows, 2*h+1)
		for _, row := range rows {
			assert.Len(t, row, 2*w+1)
		}
		assert.Equal(t, strings.Repeat("#", 2*w+1), rows[0])

		passages := 0
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := Coordinate{X: x, Y: y}
				if maze.Open(c, c.East()) {
					passages++
				}
				if maze.Open(c, c.South()) {
					passages++
				}
			}
		}
		assert.Equal(t, w*h-1, passages, "a perfect maze is a spanning tree")

		layout, err := ParseString(maze.String())
		require.NoError(t, err)
		assert.Equal(t, Coordinate{X: 1, Y: 1}, layout.Start)
		assert.Equal(t, Coordinate{X: 2*w - 1, Y: 2*h - 1}, layout.Goal)
	})
}
