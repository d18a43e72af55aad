package object

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
)

// scriptedRand replays fixed values; each sequence repeats when exhausted.
type scriptedRand struct {
	ints   []int
	floats []float64
	i, f   int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.i%len(r.ints)]
	r.i++
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.f%len(r.floats)]
	r.f++
	return v
}

// recorder is a draw.Surface that remembers what was drawn.
type recorder struct {
	rects  []rectCall
	lines  int
	points []color.RGBA
}

type rectCall struct {
	x, y, w, h int
	c          color.RGBA
}

func (r *recorder) Clear(color.RGBA) {}
func (r *recorder) FillRect(x, y, w, h int, c color.RGBA) {
	r.rects = append(r.rects, rectCall{x, y, w, h, c})
}
func (r *recorder) DrawLine(int, int, int, int, color.RGBA) { r.lines++ }
func (r *recorder) DrawPoint(_, _ int, c color.RGBA)       { r.points = append(r.points, c) }
func (r *recorder) DrawText(int, int, string, color.RGBA)  {}
func (r *recorder) Present() error                         { return nil }

var _ draw.Surface = (*recorder)(nil)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestEntityOverlaps(t *testing.T) {
	enemy := NewEntity(8, 15, 40, 30, draw.White)
	tests := []struct {
		name   string
		bullet Entity
		want   bool
	}{
		{"Overlapping", NewEntity(10, 10, 5, 10, draw.White), true},
		{"Far right", NewEntity(100, 10, 5, 10, draw.White), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bullet.Overlaps(enemy); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}

	if x, y := enemy.Center(); x != 28 || y != 30 {
		t.Errorf("Center() = (%d, %d), want (28, 30)", x, y)
	}
}

func TestCompactKeepsOrder(t *testing.T) {
	in := []Entity{
		{X: 1, Active: true},
		{X: 2},
		{X: 3, Active: true},
		{X: 4},
	}
	got, removed := compact(in)
	if removed != 2 || len(got) != 2 {
		t.Fatalf("compact removed %d, kept %d; want 2 and 2", removed, len(got))
	}
	if got[0].X != 1 || got[1].X != 3 {
		t.Errorf("compact order = %v, want X 1 then 3", got)
	}
}

func TestPlayerMovement(t *testing.T) {
	s := config.Default()
	p := NewPlayer(s)
	if p.X != 375 || p.Y != 540 || !p.Active {
		t.Fatalf("NewPlayer = %+v, want (375, 540) active", p.Entity)
	}
	if x, y := p.Muzzle(); x != 400 || y != 540 {
		t.Errorf("Muzzle() = (%d, %d), want (400, 540)", x, y)
	}

	for i := 0; i < 100; i++ {
		p.MoveLeft()
		if p.X < 0 {
			t.Fatalf("player left the screen: x=%d", p.X)
		}
	}
	if p.X != 0 {
		t.Errorf("x after holding left = %d, want 0", p.X)
	}

	for i := 0; i < 100; i++ {
		p.MoveRight()
		if p.X+p.W > s.Screen.Width {
			t.Fatalf("player left the screen: x=%d", p.X)
		}
	}
	if p.X != s.Screen.Width-p.W {
		t.Errorf("x after holding right = %d, want %d", p.X, s.Screen.Width-p.W)
	}

	var rec recorder
	p.Draw(&rec)
	if len(rec.rects) != 1 || rec.rects[0].c != PlayerColor {
		t.Errorf("Draw() = %v, want one player-colored rect", rec.rects)
	}
}

func TestEnemyColor(t *testing.T) {
	tests := []struct {
		name   string
		score  int
		jitter []int
		want   color.RGBA
	}{
		{"No score", 0, []int{10, 20, 30}, color.RGBA{10, 20, 30, 255}},
		{"Score shifts channels", 10, []int{10, 20, 30}, color.RGBA{20, 40, 60, 255}},
		{"Wraps at 256", 100, []int{200, 100, 0}, color.RGBA{44, 44, 44, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnemyColor(tt.score, &scriptedRand{ints: tt.jitter})
			if got != tt.want {
				t.Errorf("EnemyColor(%d) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestDrawEnemy(t *testing.T) {
	var rec recorder
	e := NewEntity(100, 0, 40, 30, color.RGBA{R: 220, G: 10, B: 10, A: 255})
	DrawEnemy(&rec, e)

	if len(rec.rects) != 2 {
		t.Fatalf("DrawEnemy filled %d rects, want body and cockpit", len(rec.rects))
	}
	body := rec.rects[0]
	if body != (rectCall{100, 7, 40, 15, e.Color}) {
		t.Errorf("body = %+v", body)
	}
	cockpit := rec.rects[1]
	if cockpit != (rectCall{110, 0, 20, 7, e.Color}) {
		t.Errorf("cockpit = %+v", cockpit)
	}
	if rec.lines != 10 {
		t.Errorf("DrawEnemy drew %d lines, want 10", rec.lines)
	}
}
