package loop

// HUD layout, in logical pixels.
const (
	scoreX = 10
	scoreY = 10
)

// The background gradient cycles through 256 shades, one step per frame.
const gradientSteps = 256
