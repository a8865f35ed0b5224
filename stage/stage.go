// Package stage holds the read-only tile map the player collides with.
//
// Rows are stored as runes, one per cell. Lookups take world positions and
// quantize them with vmath.ToCell; anything outside the stored rows answers
// TileOutOfBounds so collision code always has a defined outcome.
package stage

import (
	"github.com/lixenwraith/splat/vmath"
)

// Stage is an immutable tile grid
type Stage struct {
	rows  [][]rune
	width int
}

// New builds a stage from text rows, rows may differ in length
func New(rows []string) *Stage {
	s := &Stage{rows: make([][]rune, len(rows))}
	for y, line := range rows {
		s.rows[y] = []rune(line)
		if len(s.rows[y]) > s.width {
			s.width = len(s.rows[y])
		}
	}
	return s
}

// Check returns the tile kind under a world position
func (s *Stage) Check(pos vmath.Vec) TileKind {
	return s.CheckCell(vmath.ToCell(pos))
}

// CheckCell returns the tile kind of a cell
func (s *Stage) CheckCell(c vmath.Cell) TileKind {
	r, ok := s.runeAt(c)
	if !ok {
		return TileOutOfBounds
	}
	return KindOf(r)
}

func (s *Stage) runeAt(c vmath.Cell) (rune, bool) {
	if c.Y < 0 || c.Y >= len(s.rows) {
		return 0, false
	}
	row := s.rows[c.Y]
	if c.X < 0 || c.X >= len(row) {
		return 0, false
	}
	return row[c.X], true
}

// Size returns the widest row length and the row count in cells
func (s *Stage) Size() (width, height int) {
	return s.width, len(s.rows)
}

// Rows exposes the glyph rows for drawing, callers must not modify them
func (s *Stage) Rows() [][]rune {
	return s.rows
}

// Spawn locates the first spawn marker, scanning rows top to bottom
func (s *Stage) Spawn() (vmath.Vec, bool) {
	for y, row := range s.rows {
		for x, r := range row {
			if r == RuneSpawn {
				return vmath.ToWorld(vmath.C(x, y)), true
			}
		}
	}
	return vmath.Zero, false
}
