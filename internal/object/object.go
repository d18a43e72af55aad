// Package object holds the game entities and the collections that own them.
// All motion uses fixed per-tick deltas; one Update call is one frame.
package object

import (
	"image/color"

	"github.com/tomz197/invaders/internal/physics"
)

// Rand is the randomness objects draw from. *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// Entity is a bullet, an enemy, or the player ship.
type Entity struct {
	X, Y   int // Top-left corner
	W, H   int
	Active bool
	Color  color.RGBA
}

// NewEntity creates an active entity.
func NewEntity(x, y, w, h int, c color.RGBA) Entity {
	return Entity{X: x, Y: y, W: w, H: h, Active: true, Color: c}
}

// Rect returns the entity's bounding box.
func (e Entity) Rect() physics.Rect {
	return physics.Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// Overlaps checks whether two bounding boxes intersect.
func (e Entity) Overlaps(other Entity) bool {
	return physics.RectsOverlap(e.Rect(), other.Rect())
}

// Center returns the center of the bounding box.
func (e Entity) Center() (int, int) {
	return e.Rect().Center()
}

func countActive(entities []Entity) int {
	n := 0
	for _, e := range entities {
		if e.Active {
			n++
		}
	}
	return n
}

// compact removes inactive entities in place, reusing the backing array.
// Returns the number removed.
func compact(entities []Entity) ([]Entity, int) {
	kept := entities[:0]
	for _, e := range entities {
		if e.Active {
			kept = append(kept, e)
		}
	}
	removed := len(entities) - len(kept)
	clear(entities[len(kept):])
	return kept, removed
}
