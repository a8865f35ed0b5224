package parameter

import "time"

// Game loop timing
const (
	// UpdateRate is the fixed simulation rate in Hz
	UpdateRate = 100

	// UpdateInterval is the fixed simulation step
	UpdateInterval = time.Second / UpdateRate

	// FrameUpdateInterval is the render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxCatchUpTicks bounds simulation steps run for a single late frame
	MaxCatchUpTicks = 10

	// EventQueueSize is the buffered channel capacity between the poller and the loop
	EventQueueSize = 256
)
