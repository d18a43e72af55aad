package object

import (
	"image/color"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
)

// PlayerColor is the ship's fill color.
var PlayerColor = color.RGBA{G: 255, B: 150, A: 255}

// Player is the ship. It lives for the whole session.
type Player struct {
	Entity
	Speed int

	screenWidth int
}

// NewPlayer places the ship centered near the bottom of the screen.
func NewPlayer(s config.Settings) Player {
	w, h := s.Player.Width, s.Player.Height
	return Player{
		Entity:      NewEntity(s.Screen.Width/2-w/2, s.Screen.Height-s.Player.BottomOffset, w, h, PlayerColor),
		Speed:       s.Player.Speed,
		screenWidth: s.Screen.Width,
	}
}

// MoveLeft steps left while the ship is not at the left edge.
func (p *Player) MoveLeft() {
	if p.X > 0 {
		p.X -= p.Speed
	}
	p.clamp()
}

// MoveRight steps right while the ship is not at the right edge.
func (p *Player) MoveRight() {
	if p.X+p.W < p.screenWidth {
		p.X += p.Speed
	}
	p.clamp()
}

func (p *Player) clamp() {
	p.X = max(0, min(p.X, p.screenWidth-p.W))
}

// Muzzle returns where a new bullet's top-left corner goes.
func (p *Player) Muzzle() (int, int) {
	return p.X + p.W/2, p.Y
}

// Draw renders the ship.
func (p *Player) Draw(s draw.Surface) {
	s.FillRect(p.X, p.Y, p.W, p.H, p.Color)
}
