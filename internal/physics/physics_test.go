package physics

import "testing"

func TestRectsOverlap(t *testing.T) {
	enemy := Rect{X: 8, Y: 15, W: 40, H: 30}

	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"Bullet inside enemy span", Rect{10, 10, 5, 10}, enemy, true},
		{"Bullet right of enemy", Rect{100, 10, 5, 10}, enemy, false},
		{"Touching bottom edge", Rect{10, 5, 5, 10}, enemy, false},
		{"Touching left edge", Rect{3, 20, 5, 10}, enemy, false},
		{"Touching right edge", Rect{48, 20, 5, 10}, enemy, false},
		{"One pixel into left edge", Rect{4, 20, 5, 10}, enemy, true},
		{"Contained", Rect{20, 20, 2, 2}, enemy, true},
		{"Containing", Rect{0, 0, 100, 100}, enemy, true},
		{"Below", Rect{10, 45, 5, 10}, enemy, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectsOverlap(tt.a, tt.b); got != tt.want {
				t.Errorf("RectsOverlap(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := RectsOverlap(tt.b, tt.a); got != tt.want {
				t.Errorf("RectsOverlap is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	x, y := Rect{X: 100, Y: 0, W: 40, H: 30}.Center()
	if x != 120 || y != 15 {
		t.Errorf("Center() = (%d, %d), want (120, 15)", x, y)
	}
	x, y = Rect{X: -10, Y: -30, W: 5, H: 10}.Center()
	if x != -8 || y != -25 {
		t.Errorf("Center() = (%d, %d), want (-8, -25)", x, y)
	}
}
