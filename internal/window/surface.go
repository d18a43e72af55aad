// Package window hosts the game in a desktop window through ebiten.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/invaders/internal/draw"
)

// Surface draws onto the ebiten screen image of the current frame.
// Logical coordinates map 1:1 to screen pixels.
type Surface struct {
	screen *ebiten.Image
	face   text.Face
}

// Ensure Surface satisfies draw.Surface.
var _ draw.Surface = (*Surface)(nil)

// NewSurface creates a surface using the built-in 7x13 bitmap font for text.
func NewSurface() *Surface {
	return &Surface{face: text.NewGoXFace(basicfont.Face7x13)}
}

// SetTarget points the surface at the image ebiten hands to Draw.
func (s *Surface) SetTarget(screen *ebiten.Image) {
	s.screen = screen
}

// straight converts the game's straight-alpha colors for ebiten, which reads
// color.RGBA as premultiplied.
func straight(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (s *Surface) Clear(bg color.RGBA) {
	s.screen.Fill(straight(bg))
}

func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.FillRect(s.screen, float32(x), float32(y), float32(w), float32(h), straight(c), false)
}

func (s *Surface) DrawLine(x1, y1, x2, y2 int, c color.RGBA) {
	// Offset to pixel centers so a one-pixel stroke covers whole pixels.
	vector.StrokeLine(s.screen, float32(x1)+0.5, float32(y1)+0.5, float32(x2)+0.5, float32(y2)+0.5, 1, straight(c), false)
}

func (s *Surface) DrawPoint(x, y int, c color.RGBA) {
	vector.FillRect(s.screen, float32(x), float32(y), 1, 1, straight(c), false)
}

// DrawText draws text with its top-left corner at (x, y).
func (s *Surface) DrawText(x, y int, msg string, c color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(straight(c))
	text.Draw(s.screen, msg, s.face, op)
}

// Present is a no-op: ebiten shows the screen image after Draw returns.
func (s *Surface) Present() error {
	return nil
}
