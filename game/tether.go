package game

import "github.com/lixenwraith/splat/vmath"

// CastTether walks from the player toward target until a tile that is not empty
// The anchor is the last clear position snapped to its cell; a miss within maxLen,
// or an anchor in the player's own cell, reports false
func CastTether(from, target vmath.Vec, tiles Tiles, maxLen float64) (vmath.Vec, bool) {
	origin := vmath.ToCell(from)
	last := from

	c := vmath.NewCast(from, target)
	for c.Next() {
		if c.Travelled() > maxLen {
			return vmath.Zero, false
		}
		pos := c.Pos()
		if vmath.ToCell(pos) == origin {
			continue
		}
		if !tiles.Check(pos).Empty() {
			anchor := vmath.Snap(last)
			if vmath.ToCell(anchor) == origin {
				return vmath.Zero, false
			}
			return anchor, true
		}
		last = pos
	}
	return vmath.Zero, false
}
