package object

import (
	"testing"

	"github.com/tomz197/invaders/internal/config"
)

func TestNewStarfield(t *testing.T) {
	screen := config.Default().Screen
	f := NewStarfield(100, screen, newRand())

	if len(f.Stars) != 100 {
		t.Fatalf("star count = %d, want 100", len(f.Stars))
	}
	for i, s := range f.Stars {
		if s.X < 0 || s.X >= 800 || s.Y < 0 || s.Y >= 600 {
			t.Errorf("star %d at (%v, %v) is off screen", i, s.X, s.Y)
		}
		if s.Speed < 0.5 || s.Speed >= 1.0 {
			t.Errorf("star %d speed %v out of [0.5, 1.0)", i, s.Speed)
		}
	}
}

func TestStarfieldUpdateInvariants(t *testing.T) {
	screen := config.Default().Screen
	rng := newRand()
	f := NewStarfield(100, screen, rng)

	wraps := 0
	for tick := 0; tick < 3000; tick++ {
		before := make([]Star, len(f.Stars))
		copy(before, f.Stars)

		f.Update(rng)

		if len(f.Stars) != 100 {
			t.Fatalf("tick %d: star count %d, want 100", tick, len(f.Stars))
		}
		for i, s := range f.Stars {
			prev := before[i]
			if s.Y < prev.Y {
				if s.Y != 0 {
					t.Fatalf("tick %d: star %d moved up to %v without wrapping", tick, i, s.Y)
				}
				wraps++
				continue
			}
			if s.X != prev.X {
				t.Fatalf("tick %d: star %d changed column without wrapping", tick, i)
			}
			if s.Y != prev.Y+prev.Speed {
				t.Fatalf("tick %d: star %d fell %v, want %v", tick, i, s.Y-prev.Y, prev.Speed)
			}
		}
	}
	if wraps == 0 {
		t.Error("no star wrapped in 3000 ticks")
	}
}

func TestStarWrapsPastBottom(t *testing.T) {
	f := NewStarfield(1, config.Screen{Width: 800, Height: 600}, &scriptedRand{floats: []float64{0.5}})
	f.Stars[0] = Star{X: 10, Y: 599.5, Speed: 0.5}

	f.Update(&scriptedRand{floats: []float64{0.25}})
	if s := f.Stars[0]; s.Y != 600 || s.X != 10 {
		t.Fatalf("star at the edge = %+v, want y=600 x=10", s)
	}
	f.Update(&scriptedRand{floats: []float64{0.25}})
	if s := f.Stars[0]; s.Y != 0 || s.X != 200 {
		t.Errorf("wrapped star = %+v, want (200, 0)", s)
	}

	var rec recorder
	f.Draw(&rec)
	if len(rec.points) != 1 {
		t.Errorf("Draw made %d points, want 1", len(rec.points))
	}
}
