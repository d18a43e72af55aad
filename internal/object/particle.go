package object

import (
	"image/color"
	"math"

	"github.com/tomz197/invaders/internal/draw"
)

// Particle tuning.
const (
	ParticleMaxSpeed = 5.0 // pixels per tick, exclusive
	ParticleMinLife  = 50  // ticks
	ParticleLifeSpan = 50  // life is drawn from [min, min+span)
	ParticleSize     = 2
)

// ExplosionPalette holds the colors a burst particle can take.
var ExplosionPalette = [...]color.RGBA{
	{R: 255, G: 100, B: 100, A: 255},
	{R: 100, G: 255, B: 100, A: 255},
	{R: 100, G: 100, B: 255, A: 255},
	{R: 255, G: 255, B: 100, A: 255},
	{R: 255, G: 100, B: 255, A: 255},
}

// Particle is a short-lived visual effect.
type Particle struct {
	X, Y    float64 // Position
	VX, VY  float64 // Velocity, pixels per tick
	Life    float64 // Ticks remaining
	MaxLife float64 // Initial life (for fade calculation)
	Color   color.RGBA
}

// Alpha is the particle's opacity: full at spawn, fading linearly to zero
// as life runs out.
func (p Particle) Alpha() uint8 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	f := p.Life / p.MaxLife
	if f >= 1 {
		return 255
	}
	return uint8(f * 255)
}

// Particles owns every live particle.
type Particles struct {
	P []Particle
}

// EmitBurst spawns count particles at (x, y), each flying in a random
// direction at a random speed with a random life and palette color.
func (ps *Particles) EmitBurst(x, y float64, count int, rng Rand) {
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := rng.Float64() * ParticleMaxSpeed
		life := float64(ParticleMinLife + rng.Intn(ParticleLifeSpan))

		ps.P = append(ps.P, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			MaxLife: life,
			Color:   ExplosionPalette[rng.Intn(len(ExplosionPalette))],
		})
	}
}

// Update advances every particle one tick and drops the expired ones.
func (ps *Particles) Update() {
	kept := ps.P[:0]
	for _, p := range ps.P {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	ps.P = kept
}

// Len returns the number of live particles.
func (ps *Particles) Len() int {
	return len(ps.P)
}

// Clear drops every particle.
func (ps *Particles) Clear() {
	ps.P = ps.P[:0]
}

// Draw renders each particle as a small square with fading alpha.
func (ps *Particles) Draw(s draw.Surface) {
	for _, p := range ps.P {
		c := p.Color
		c.A = p.Alpha()
		s.FillRect(int(p.X), int(p.Y), ParticleSize, ParticleSize, c)
	}
}
