package render

import (
	"github.com/lixenwraith/splat/engine"
	"github.com/lixenwraith/splat/vmath"
)

// Painter is the drawing sink, coordinates are absolute screen cells
type Painter interface {
	Paint(x, y int, r rune)
}

// Camera maps world positions into a clipped window of the screen
// Pos is the world position shown at the window's top-left cell, Frame is where that
// window sits on screen, Width and Height are the window size in cells
type Camera struct {
	Pos    vmath.Vec
	Frame  vmath.Cell
	Width  int
	Height int
}

// PaintSprite draws sprite with its top-left cell at the world position at
// Only the part overlapping the camera window is painted
func (c *Camera) PaintSprite(p Painter, sprite engine.Sprite, at vmath.Vec) {
	rel := vmath.ToCell(at).Sub(vmath.ToCell(c.Pos))

	startY := max(rel.Y, 0)
	endY := min(rel.Y+len(sprite), c.Height)
	startX := max(rel.X, 0)

	for y := startY; y < endY; y++ {
		row := sprite[y-rel.Y]
		endX := min(rel.X+len(row), c.Width)
		for x := startX; x < endX; x++ {
			p.Paint(c.Frame.X+x, c.Frame.Y+y, row[x-rel.X])
		}
	}
}

// PaintDot draws a single glyph, dropped silently outside the window
func (c *Camera) PaintDot(p Painter, r rune, at vmath.Vec) {
	rel := vmath.ToCell(at).Sub(vmath.ToCell(c.Pos))
	if !c.Visible(rel) {
		return
	}
	p.Paint(c.Frame.X+rel.X, c.Frame.Y+rel.Y, r)
}

// Visible reports whether a window-relative cell lies inside the camera window
func (c *Camera) Visible(rel vmath.Cell) bool {
	return rel.X >= 0 && rel.X < c.Width && rel.Y >= 0 && rel.Y < c.Height
}

// ScreenToWorld converts an absolute screen cell, such as a mouse position, to world space
func (c *Camera) ScreenToWorld(col, row int) vmath.Vec {
	rel := vmath.C(col, row).Sub(c.Frame)
	return c.Pos.Add(vmath.ToWorld(rel))
}

// Follow scrolls the camera minimally so target stays inside the dead zone
// Margins are clamped to half the window so a dead zone always exists
func (c *Camera) Follow(target vmath.Vec, marginX, marginY int) {
	rel := vmath.ToCell(target).Sub(vmath.ToCell(c.Pos))

	marginX = min(marginX, c.Width/2)
	marginY = min(marginY, c.Height/2)

	var shift vmath.Cell
	switch {
	case rel.X < marginX:
		shift.X = rel.X - marginX
	case rel.X > c.Width-marginX-1:
		shift.X = rel.X - (c.Width - marginX - 1)
	}
	switch {
	case rel.Y < marginY:
		shift.Y = rel.Y - marginY
	case rel.Y > c.Height-marginY-1:
		shift.Y = rel.Y - (c.Height - marginY - 1)
	}

	c.Pos = c.Pos.Add(vmath.ToWorld(shift))
}

// Center places target in the middle of the window
func (c *Camera) Center(target vmath.Vec) {
	c.Pos = target.Sub(vmath.ToWorld(vmath.C(c.Width/2, c.Height/2)))
}
