package object

import (
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
)

// Star speed range, pixels per tick.
const (
	StarMinSpeed   = 0.5
	StarSpeedRange = 0.5
)

// Star is a background point falling at its own speed.
type Star struct {
	X, Y  float64
	Speed float64
}

// Starfield is a fixed set of stars recycled from the bottom edge back to
// the top, giving a parallax scroll.
type Starfield struct {
	Stars []Star

	width  float64
	height float64
}

// NewStarfield scatters count stars across the screen.
func NewStarfield(count int, screen config.Screen, rng Rand) *Starfield {
	f := &Starfield{
		Stars:  make([]Star, count),
		width:  float64(screen.Width),
		height: float64(screen.Height),
	}
	for i := range f.Stars {
		f.Stars[i] = Star{
			X:     rng.Float64() * f.width,
			Y:     rng.Float64() * f.height,
			Speed: StarMinSpeed + rng.Float64()*StarSpeedRange,
		}
	}
	return f
}

// Update moves every star down by its speed. A star past the bottom edge
// restarts at the top in a new column.
func (f *Starfield) Update(rng Rand) {
	for i := range f.Stars {
		s := &f.Stars[i]
		s.Y += s.Speed
		if s.Y > f.height {
			s.Y = 0
			s.X = rng.Float64() * f.width
		}
	}
}

// Draw renders the stars as white points.
func (f *Starfield) Draw(s draw.Surface) {
	for _, star := range f.Stars {
		s.DrawPoint(int(star.X), int(star.Y), draw.White)
	}
}
