package parameter

// Player forces, world units per second squared unless noted
const (
	// Gravity is the downward acceleration applied while airborne
	Gravity = 100.0

	// AirDrag scales the quadratic drag opposing velocity (force = AirDrag * speed²)
	AirDrag = 0.01

	// SwingKick is the velocity change added along the swing tangent on the tick a tether lands
	// Only applied when gravity already favors the current swing direction
	SwingKick = 30.0

	// JumpSpeed is the launch speed off a surface toward the pointer
	JumpSpeed = 60.0
)

// Spring tiles
const (
	// SpringKick multiplies incoming vertical speed on bounce, must exceed 1
	SpringKick = 1.2

	// MinSpringSpeed is the floor for post-bounce vertical speed
	MinSpringSpeed = 60.0
)
