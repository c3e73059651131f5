// Package core provides the deterministic game-state engine for Snake.
// This package is UI-agnostic: it has no timers, no I/O and takes all
// randomness as an explicit Rand parameter.
package core

import (
	"fmt"
	"math"
)

// Cell is a grid coordinate. X increases to the right, Y increases downward.
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighboring cell in the given direction.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the Manhattan distance to another cell.
func (c Cell) Manhattan(other Cell) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Distance returns the Euclidean distance to another cell.
func (c Cell) Distance(other Cell) float64 {
	return math.Hypot(float64(c.X-other.X), float64(c.Y-other.Y))
}

// Direction is the movement direction of the snake or a worm.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all valid directions in a fixed order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d <= DirRight
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit vector for one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. Invalid directions map to themselves.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// ParseDirection converts a name ("up", "down", "left", "right") to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

// Grid describes the board dimensions.
type Grid struct {
	Cols int
	Rows int
}

// InBounds reports whether c lies within [0,Cols)x[0,Rows).
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Size returns the number of cells on the board.
func (g Grid) Size() int {
	return g.Cols * g.Rows
}

// Cells returns every cell in row-major order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Size())
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// Neighbors returns the in-bounds neighbors of c in Directions order.
func (g Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range Directions {
		if n := c.Step(d); g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}
