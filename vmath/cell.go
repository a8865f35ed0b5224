package vmath

import (
	"fmt"
	"math"
)

// Terminal character cells are twice as tall as they are wide
const (
	CellWidth  = 1.0
	CellHeight = 2.0
)

// StepSize is the march step: the smaller cell side in world units
const StepSize = min(CellWidth, CellHeight)

// Cell is a discrete grid coordinate used for tile lookup and drawing
type Cell struct {
	X, Y int
}

// C is a convenience constructor for Cell
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

func (c Cell) Add(o Cell) Cell {
	return Cell{c.X + o.X, c.Y + o.Y}
}

func (c Cell) Sub(o Cell) Cell {
	return Cell{c.X - o.X, c.Y - o.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ToCell quantizes a world position to the cell containing it
// Lossy: sub-cell precision is dropped, up to ±1 world unit per round trip
func ToCell(v Vec) Cell {
	return Cell{
		X: int(math.Round(v.X / CellWidth)),
		Y: int(math.Round(v.Y / CellHeight)),
	}
}

// ToWorld returns the world position of a cell origin
func ToWorld(c Cell) Vec {
	return Vec{
		X: float64(c.X) * CellWidth,
		Y: float64(c.Y) * CellHeight,
	}
}

// Snap quantizes v to the world position of its cell
func Snap(v Vec) Vec {
	return ToWorld(ToCell(v))
}
