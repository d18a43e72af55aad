package object

import (
	"image/color"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
)

// Store owns the active bullets and enemies. Entities are stored by value;
// leaving the active set means being dropped by Compact.
type Store struct {
	Bullets []Entity
	Enemies []Entity

	screen  config.Screen
	bullets config.Bullets
	enemies config.Enemies
}

// NewStore creates an empty store sized for the configured caps.
func NewStore(s config.Settings) *Store {
	return &Store{
		Bullets: make([]Entity, 0, s.Bullets.Max),
		Enemies: make([]Entity, 0, s.Enemies.Max),
		screen:  s.Screen,
		bullets: s.Bullets,
		enemies: s.Enemies,
	}
}

// SpawnBullet adds a bullet with its top-left corner at (x, y).
// It is a no-op when the active bullet count is at the cap.
func (s *Store) SpawnBullet(x, y int) bool {
	if countActive(s.Bullets) >= s.bullets.Max {
		return false
	}
	s.Bullets = append(s.Bullets, NewEntity(x, y, s.bullets.Width, s.bullets.Height, draw.White))
	return true
}

// SpawnEnemy adds an enemy at column x just above the visible area.
// It is a no-op when the active enemy count is at the cap.
func (s *Store) SpawnEnemy(x int, c color.RGBA) bool {
	if !s.EnemyRoom() {
		return false
	}
	s.Enemies = append(s.Enemies, NewEntity(x, -s.enemies.Height, s.enemies.Width, s.enemies.Height, c))
	return true
}

// EnemyRoom reports whether another enemy fits under the cap.
func (s *Store) EnemyRoom() bool {
	return countActive(s.Enemies) < s.enemies.Max
}

// UpdateBullets moves every bullet up one step. A bullet whose bottom edge
// reaches the top of the screen is deactivated.
func (s *Store) UpdateBullets() {
	for i := range s.Bullets {
		b := &s.Bullets[i]
		b.Y -= s.bullets.Speed
		if b.Y+b.H <= 0 {
			b.Active = false
		}
	}
}

// UpdateEnemies moves every enemy down one step. An enemy below the bottom
// edge is deactivated; escaping costs nothing.
func (s *Store) UpdateEnemies() {
	for i := range s.Enemies {
		e := &s.Enemies[i]
		e.Y += s.enemies.Speed
		if e.Y > s.screen.Height {
			e.Active = false
		}
	}
}

// Compact drops inactive entities from both collections.
func (s *Store) Compact() (bullets, enemies int) {
	s.Bullets, bullets = compact(s.Bullets)
	s.Enemies, enemies = compact(s.Enemies)
	return bullets, enemies
}

// Release drops every entity.
func (s *Store) Release() {
	clear(s.Bullets)
	clear(s.Enemies)
	s.Bullets = s.Bullets[:0]
	s.Enemies = s.Enemies[:0]
}

// Draw renders enemies, then bullets.
func (s *Store) Draw(surface draw.Surface) {
	for _, e := range s.Enemies {
		DrawEnemy(surface, e)
	}
	for _, b := range s.Bullets {
		surface.FillRect(b.X, b.Y, b.W, b.H, b.Color)
	}
}
