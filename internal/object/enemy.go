package object

import (
	"image/color"

	"github.com/tomz197/invaders/internal/draw"
)

// EnemyColor derives an enemy tint from the score plus per-channel jitter,
// so the fleet's color drifts as the score climbs.
func EnemyColor(score int, rng Rand) color.RGBA {
	return color.RGBA{
		R: uint8((rng.Intn(256) + score) % 256),
		G: uint8((rng.Intn(256) + score*2) % 256),
		B: uint8((rng.Intn(256) + score*3) % 256),
		A: 255,
	}
}

// DrawEnemy draws an enemy as a small ship: a body across the lower half,
// V-shaped wings on both sides, a cockpit on top and two stripes on the body.
func DrawEnemy(s draw.Surface, e Entity) {
	bodyW := e.W
	bodyH := e.H / 2
	wingH := bodyH / 2
	wingOffset := bodyW / 4

	bodyY := e.Y + wingH
	s.FillRect(e.X, bodyY, bodyW, bodyH, e.Color)

	wingTop := e.Y + wingH
	wingBottom := e.Y + wingH + wingH
	s.DrawLine(e.X, wingTop, e.X+wingOffset, e.Y, e.Color)
	s.DrawLine(e.X, wingTop, e.X+wingOffset, wingBottom, e.Color)
	s.DrawLine(e.X+bodyW, wingTop, e.X+bodyW-wingOffset, e.Y, e.Color)
	s.DrawLine(e.X+bodyW, wingTop, e.X+bodyW-wingOffset, wingBottom, e.Color)

	// Cockpit with a brighter outline
	cx, cw := e.X+bodyW/4, bodyW/2
	s.FillRect(cx, e.Y, cw, wingH, e.Color)
	outline := draw.Brighten(e.Color, 50)
	right, bottom := cx+cw-1, e.Y+wingH-1
	s.DrawLine(cx, e.Y, right, e.Y, outline)
	s.DrawLine(cx, bottom, right, bottom, outline)
	s.DrawLine(cx, e.Y, cx, bottom, outline)
	s.DrawLine(right, e.Y, right, bottom, outline)

	stripe := draw.Brighten(e.Color, 30)
	s.DrawLine(e.X+bodyW/4, bodyY, e.X+bodyW/4, bodyY+bodyH, stripe)
	s.DrawLine(e.X+3*bodyW/4, bodyY, e.X+3*bodyW/4, bodyY+bodyH, stripe)
}
