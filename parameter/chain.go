package parameter

import "time"

// Tether
const (
	// ChainLinkTime is the time for one link to appear or disappear
	ChainLinkTime = 10 * time.Millisecond

	// ChainMaxLength caps the tether throw distance in world units
	ChainMaxLength = 60.0

	// ChainLinkChar is drawn at each visible link position
	ChainLinkChar = '·'
)
