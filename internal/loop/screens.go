package loop

import (
	"fmt"
	"image/color"

	"github.com/tomz197/invaders/internal/draw"
)

// Render draws the frame back to front: background, stars, player,
// enemies, bullets, particles, then the score. It does not present.
func (g *Game) Render(s draw.Surface) {
	s.Clear(draw.Black)
	g.colorShift = (g.colorShift + 1) % gradientSteps
	g.drawBackground(s)

	g.stars.Draw(s)
	g.player.Draw(s)
	g.store.Draw(s)
	g.particles.Draw(s)
	g.drawHUD(s)
}

// drawBackground paints a left-to-right gradient whose hue drifts from
// blue to green as the frame counter advances.
func (g *Game) drawBackground(s draw.Surface) {
	width, height := g.settings.Screen.Width, g.settings.Screen.Height
	for x := 0; x < width; x++ {
		s.DrawLine(x, 0, x, height-1, gradientColor(g.colorShift, x, width))
	}
}

// gradientColor returns the background color of column x.
func gradientColor(shift, x, width int) color.RGBA {
	return color.RGBA{
		G: uint8(shift * x / width),
		B: uint8((gradientSteps - 1 - shift) * x / width),
		A: 255,
	}
}

func (g *Game) drawHUD(s draw.Surface) {
	s.DrawText(scoreX, scoreY, fmt.Sprintf("Score: %d", g.score), draw.White)
}
