package object

import (
	"math"
	"testing"
)

func TestEmitBurst(t *testing.T) {
	var ps Particles
	ps.EmitBurst(120, 15, 30, newRand())

	if ps.Len() != 30 {
		t.Fatalf("burst produced %d particles, want 30", ps.Len())
	}
	for i, p := range ps.P {
		if p.X != 120 || p.Y != 15 {
			t.Errorf("particle %d starts at (%v, %v), want (120, 15)", i, p.X, p.Y)
		}
		if speed := math.Hypot(p.VX, p.VY); speed >= ParticleMaxSpeed+1e-9 {
			t.Errorf("particle %d speed %v out of range", i, speed)
		}
		if p.Life < 50 || p.Life >= 100 || p.Life != p.MaxLife {
			t.Errorf("particle %d life %v / %v, want equal and in [50, 100)", i, p.Life, p.MaxLife)
		}
		if !inPalette(p) {
			t.Errorf("particle %d color %v not in palette", i, p.Color)
		}
	}
}

func inPalette(p Particle) bool {
	for _, c := range ExplosionPalette {
		if c == p.Color {
			return true
		}
	}
	return false
}

func TestEmitBurstUsesAngleAndSpeed(t *testing.T) {
	// Float64 feeds angle then speed: a quarter turn at 0.5*max speed.
	r := &scriptedRand{floats: []float64{0.25, 0.5}, ints: []int{10, 3}}
	var ps Particles
	ps.EmitBurst(0, 0, 1, r)

	p := ps.P[0]
	if math.Abs(p.VX) > 1e-9 || math.Abs(p.VY-2.5) > 1e-9 {
		t.Errorf("velocity = (%v, %v), want (0, 2.5)", p.VX, p.VY)
	}
	if p.Life != 60 {
		t.Errorf("life = %v, want 60", p.Life)
	}
	if p.Color != ExplosionPalette[3] {
		t.Errorf("color = %v, want palette[3]", p.Color)
	}
}

func TestParticleUpdate(t *testing.T) {
	ps := Particles{P: []Particle{
		{X: 0, Y: 0, VX: 1, VY: -2, Life: 3, MaxLife: 3},
		{X: 5, Y: 5, Life: 1, MaxLife: 50},
	}}

	ps.Update()
	if ps.Len() != 1 {
		t.Fatalf("after one tick %d particles, want 1 (life 1 expires)", ps.Len())
	}
	if p := ps.P[0]; p.X != 1 || p.Y != -2 || p.Life != 2 {
		t.Errorf("particle = %+v, want moved to (1,-2) with life 2", p)
	}

	ps.Update()
	ps.Update()
	if ps.Len() != 0 {
		t.Errorf("particle survived reaching life 0")
	}
}

func TestParticleAlpha(t *testing.T) {
	tests := []struct {
		name string
		life float64
		max  float64
		want uint8
	}{
		{"Fresh", 80, 80, 255},
		{"Half", 40, 80, 127},
		{"Last tick", 1, 80, 3},
		{"Dead", 0, 80, 0},
		{"Overdue", -1, 80, 0},
		{"No max life", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Particle{Life: tt.life, MaxLife: tt.max}
			if got := p.Alpha(); got != tt.want {
				t.Errorf("Alpha() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParticleAlphaFadesMonotonically(t *testing.T) {
	var ps Particles
	ps.EmitBurst(0, 0, 1, newRand())
	prev := ps.P[0].Alpha()
	if prev != 255 {
		t.Fatalf("fresh particle alpha = %d, want 255", prev)
	}
	for ps.Len() > 0 {
		ps.Update()
		if ps.Len() == 0 {
			break
		}
		a := ps.P[0].Alpha()
		if a > prev {
			t.Fatalf("alpha rose from %d to %d", prev, a)
		}
		prev = a
	}
	if prev > 6 {
		t.Errorf("alpha before removal = %d, want close to 0", prev)
	}
}

func TestParticlesDraw(t *testing.T) {
	ps := Particles{P: []Particle{{X: 10.7, Y: 20.2, Life: 25, MaxLife: 50, Color: ExplosionPalette[0]}}}
	var rec recorder
	ps.Draw(&rec)

	if len(rec.rects) != 1 {
		t.Fatalf("Draw filled %d rects, want 1", len(rec.rects))
	}
	r := rec.rects[0]
	if r.x != 10 || r.y != 20 || r.w != 2 || r.h != 2 {
		t.Errorf("rect = %+v, want 2x2 at (10, 20)", r)
	}
	if r.c.R != 255 || r.c.G != 100 || r.c.A != 127 {
		t.Errorf("color = %v, want palette[0] at alpha 127", r.c)
	}

	ps.Clear()
	if ps.Len() != 0 {
		t.Error("Clear() left particles")
	}
}
