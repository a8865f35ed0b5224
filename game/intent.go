package game

import (
	"github.com/lixenwraith/splat/stage"
	"github.com/lixenwraith/splat/vmath"
)

// Intent is the input snapshot sampled once per tick
type Intent struct {
	// Launch fired this tick
	Launch bool
	// Throw pressed this tick
	Throw bool
	// Release edge this tick
	Release bool
	// Target is the pointer position in world space
	Target vmath.Vec
}

// Tiles is the read-only tile map query the player collides against
type Tiles interface {
	Check(pos vmath.Vec) stage.TileKind
}
