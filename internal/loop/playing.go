package loop

import (
	"github.com/tomz197/invaders/internal/input"
)

// Step plays one frame: input first, then the simulation. now is the
// frame-start time in milliseconds from the loop clock.
// A quit seen during input still lets the rest of the frame complete.
func (g *Game) Step(src input.Source, now int64) {
	g.HandleInput(src)
	g.Update(now)
}

// HandleInput drains pending events and applies held keys to the player.
// Fire is limited only by the bullet cap.
func (g *Game) HandleInput(src input.Source) {
	for _, ev := range src.PollEvents() {
		switch {
		case ev.Type == input.EventQuit:
			g.Quit("quit")
		case ev.Type == input.EventKeyDown && ev.Key == input.KeyEscape:
			g.Quit("escape")
		}
	}

	if src.KeyState(input.KeyLeft) {
		g.player.MoveLeft()
	}
	if src.KeyState(input.KeyRight) {
		g.player.MoveRight()
	}
	if src.KeyState(input.KeySpace) {
		g.store.SpawnBullet(g.player.Muzzle())
	}
}

// Update advances the world by one tick in a fixed order: spawner, stars,
// enemies, bullets, collisions, particles. Inactive entities are compacted
// away before collisions run and again after them.
func (g *Game) Update(now int64) {
	g.frames++

	if g.spawner.Update(now, g.store, g.score, g.rng) {
		e := g.store.Enemies[len(g.store.Enemies)-1]
		g.logger.Debug("enemy spawned", "x", e.X, "enemies", len(g.store.Enemies))
	}

	g.stars.Update(g.rng)
	g.store.UpdateEnemies()
	g.store.UpdateBullets()
	g.store.Compact()

	g.checkCollisions()
	g.store.Compact()

	g.particles.Update()
}
