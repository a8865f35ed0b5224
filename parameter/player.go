package parameter

import "time"

// Player visuals and death sequence
const (
	// PlayerChar is the glyph drawn at the player position
	PlayerChar = 'O'

	// DeathFrameTime is how long each death animation frame is shown
	DeathFrameTime = 100 * time.Millisecond
)

// DeathFrames are shown in order before respawning at the last checkpoint
var DeathFrames = []string{"O", "o", "*", "+", "."}
