package grid

// BoundsMode selects how the upper edge of an ObstacleMap is interpreted.
type BoundsMode int

const (
	// BoundsInclusive accepts 0 <= x <= Width and 0 <= y <= Height.
	// The valid region is one cell larger than the declared size on each axis;
	// this matches the behaviour existing maps were planned with.
	BoundsInclusive BoundsMode = iota
	// BoundsExclusive accepts 0 <= x < Width and 0 <= y < Height.
	BoundsExclusive
)

// String returns the mode name used in cache keys and logs.
func (b BoundsMode) String() string {
	if b == BoundsExclusive {
		return "exclusive"
	}
	return "inclusive"
}

// ObstacleMap is the read-only description of the world: its size and
// the set of blocked cells.
type ObstacleMap struct {
	Width     int
	Height    int
	Bounds    BoundsMode
	obstacles map[Coordinate]struct{}
}

// NewObstacleMap creates a map of the given size with the listed obstacles.
func NewObstacleMap(width, height int, obstacles ...Coordinate) *ObstacleMap {
	om := &ObstacleMap{
		Width:     width,
		Height:    height,
		obstacles: make(map[Coordinate]struct{}, len(obstacles)),
	}
	for _, o := range obstacles {
		om.obstacles[o] = struct{}{}
	}
	return om
}

// WithBounds returns a copy of the map using mode for bounds checks.
// The obstacle set is shared; maps are never mutated after construction.
func (om *ObstacleMap) WithBounds(mode BoundsMode) *ObstacleMap {
	cp := *om
	cp.Bounds = mode
	return &cp
}

// IsObstacle reports whether c is blocked.
func (om *ObstacleMap) IsObstacle(c Coordinate) bool {
	_, blocked := om.obstacles[c]
	return blocked
}

// Obstacles returns the number of blocked cells.
func (om *ObstacleMap) Obstacles() int {
	return len(om.obstacles)
}

// InBounds reports whether c lies inside the map under its BoundsMode.
func (om *ObstacleMap) InBounds(c Coordinate) bool {
	if c.X < 0 || c.Y < 0 {
		return false
	}
	if om.Bounds == BoundsExclusive {
		return c.X < om.Width && c.Y < om.Height
	}
	return c.X <= om.Width && c.Y <= om.Height
}

// InBoundsState is InBounds for a state; a nil state is out of bounds.
func (om *ObstacleMap) InBoundsState(s *State) bool {
	if s == nil {
		return false
	}
	return om.InBounds(s.Coordinate())
}
