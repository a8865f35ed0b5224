package parameter

// Camera follow margins
// Inside the dead zone the camera does not move
const (
	// CameraDeadZoneMarginX is horizontal slack in cells before the camera scrolls
	CameraDeadZoneMarginX = 12

	// CameraDeadZoneMarginY is vertical slack in cells before the camera scrolls
	CameraDeadZoneMarginY = 6

	// CameraEnabled controls whether camera following is active
	// When false, camera stays at its initial position
	CameraEnabled = true
)

// Frame layout around the play area
const (
	// BorderWidth is the frame drawn on each side of the play area
	BorderWidth = 1

	// StatusRows is reserved below the play area for the status line
	StatusRows = 1
)
