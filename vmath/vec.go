package vmath

import (
	"fmt"
	"math"
)

// Vec is a continuous world-space position, direction or velocity
// Y grows downward, one world unit is one cell wide and half a cell tall
type Vec struct {
	X, Y float64
}

// Zero is the origin and the result of every degenerate vector operation
var Zero = Vec{}

// V is a convenience constructor for Vec
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

func (v Vec) Neg() Vec {
	return Vec{-v.X, -v.Y}
}

// Dot returns v.X*o.X + v.Y*o.Y
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// MagSq returns squared magnitude without sqrt
func (v Vec) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Mag returns Euclidean length
func (v Vec) Mag() float64 {
	return math.Sqrt(v.MagSq())
}

// Normalize returns the unit vector, zero-safe
func (v Vec) Normalize() Vec {
	mag := v.Mag()
	if mag == 0 {
		return Zero
	}
	inv := 1.0 / mag
	return Vec{v.X * inv, v.Y * inv}
}

// Perpendicular returns vector rotated 90° counter-clockwise
func (v Vec) Perpendicular() Vec {
	return Vec{-v.Y, v.X}
}

// TransformBasis expresses v in the basis spanned by tangent and the radial axis it was
// rotated from: X is the component along tangent, Y along the radial direction r where
// tangent == r.Perpendicular()
func (v Vec) TransformBasis(tangent Vec) Vec {
	return Vec{
		X: v.Dot(tangent),
		Y: v.X*tangent.Y - v.Y*tangent.X,
	}
}

// ToCellSpace squashes the vertical axis so that a circle in cell space
// maps to a visually round shape on the character grid
func (v Vec) ToCellSpace() Vec {
	return Vec{v.X / CellWidth, v.Y / CellHeight}
}

// IsZero reports whether both components are exactly zero
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Equal is exact component equality
func (v Vec) Equal(o Vec) bool {
	return v.X == o.X && v.Y == o.Y
}

// String formats with three decimals for log lines
func (v Vec) String() string {
	return fmt.Sprintf("{x: %.3f, y: %.3f}", v.X, v.Y)
}

// Sign returns -1, 0 or 1
func Sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}
