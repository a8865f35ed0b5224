package stage

// TileKind classifies a map cell for collision response
type TileKind uint8

const (
	TileNothing TileKind = iota
	TileSolid
	TileSpring
	TileHazard
	TileCheckpoint
	TileOutOfBounds
)

// Map glyphs
const (
	RuneEmpty      = ' '
	RuneSolid      = '#'
	RuneSpring     = '^'
	RuneHazard     = 'x'
	RuneCheckpoint = 'C'
	RuneSpawn      = '@'
)

var tileNames = [...]string{
	TileNothing:     "nothing",
	TileSolid:       "solid",
	TileSpring:      "spring",
	TileHazard:      "hazard",
	TileCheckpoint:  "checkpoint",
	TileOutOfBounds: "out-of-bounds",
}

func (k TileKind) String() string {
	if int(k) < len(tileNames) {
		return tileNames[k]
	}
	return "unknown"
}

// Empty reports whether a tether or body passes through the tile unobstructed
func (k TileKind) Empty() bool {
	return k == TileNothing || k == TileOutOfBounds
}

// KindOf maps a map glyph to its tile kind, any unknown glyph is solid
func KindOf(r rune) TileKind {
	switch r {
	case RuneEmpty, RuneSpawn:
		return TileNothing
	case RuneSpring:
		return TileSpring
	case RuneHazard, 'X':
		return TileHazard
	case RuneCheckpoint, 'c':
		return TileCheckpoint
	default:
		return TileSolid
	}
}
