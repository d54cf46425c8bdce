// Package display draws obstacle maps and planned paths as text.
package display

import (
	"bufio"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-planner/grid"
	"github.com/beka-birhanu/vinom-planner/mdp"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Cell symbols used by Render.
const (
	PathSymbol  = '*'
	EmptySymbol = ' '
)

// Options controls rendering.
type Options struct {
	Color bool // style cells with ANSI colours
}

// IsTerminal reports whether w is a terminal, which is when colour makes sense.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type palette struct {
	obstacle lipgloss.Style
	start    lipgloss.Style
	goal     lipgloss.Style
	path     lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		obstacle: r.NewStyle().Foreground(lipgloss.Color("#2C4A54")),
		start:    r.NewStyle().Foreground(lipgloss.Color("#F4D03F")).Bold(true),
		goal:     r.NewStyle().Foreground(lipgloss.Color("#2CD7C7")).Bold(true),
		path:     r.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
	}
}

// Render writes a framed picture of layout to w. When path is non-nil the
// cells it walks are marked. The frame grows to cover path cells that fall
// outside the declared map size.
func Render(w io.Writer, layout *grid.Layout, path *mdp.Path, opts Options) error {
	om := layout.Map
	cols, rows := om.Width, om.Height

	walked := make(map[grid.Coordinate]struct{})
	if path != nil {
		for _, c := range path.Cells() {
			walked[c] = struct{}{}
			cols = max(cols, c.X+1)
			rows = max(rows, c.Y+1)
		}
	}

	var pal palette
	if opts.Color {
		pal = newPalette(w)
	}
	paint := func(style lipgloss.Style, symbol rune) string {
		if !opts.Color {
			return string(symbol)
		}
		return style.Render(string(symbol))
	}

	bw := bufio.NewWriter(w)
	border := "+" + strings.Repeat("-", cols) + "+\n"
	_, _ = bw.WriteString(border)
	for y := 0; y < rows; y++ {
		_ = bw.WriteByte('|')
		for x := 0; x < cols; x++ {
			c := grid.Coordinate{X: x, Y: y}
			_, onPath := walked[c]
			switch {
			case c == layout.Start:
				_, _ = bw.WriteString(paint(pal.start, grid.StartSymbol))
			case c == layout.Goal:
				_, _ = bw.WriteString(paint(pal.goal, grid.GoalSymbol))
			case om.IsObstacle(c):
				_, _ = bw.WriteString(paint(pal.obstacle, grid.ObstacleSymbol))
			case onPath:
				_, _ = bw.WriteString(paint(pal.path, PathSymbol))
			default:
				_ = bw.WriteByte(EmptySymbol)
			}
		}
		_, _ = bw.WriteString("|\n")
	}
	_, _ = bw.WriteString(border)

	return bw.Flush()
}

// String renders without colour.
func String(layout *grid.Layout, path *mdp.Path) string {
	var sb strings.Builder
	_ = Render(&sb, layout, path, Options{})
	return sb.String()
}
