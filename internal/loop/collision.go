package loop

// checkCollisions tests every bullet against every enemy. A pair is only
// tested while both are active, so the first bullet to reach an enemy wins
// it and each kill scores once.
func (g *Game) checkCollisions() {
	bullets, enemies := g.store.Bullets, g.store.Enemies
	for i := range bullets {
		b := &bullets[i]
		for j := range enemies {
			if !b.Active {
				break
			}
			e := &enemies[j]
			if !e.Active || !b.Overlaps(*e) {
				continue
			}
			b.Active = false
			e.Active = false
			g.onKill(e.Center())
		}
	}
}

// onKill scores a destroyed enemy and explodes it at (x, y).
func (g *Game) onKill(x, y int) {
	g.score += g.settings.Enemies.KillScore
	g.kills++
	g.particles.EmitBurst(float64(x), float64(y), g.settings.Effects.BurstSize, g.rng)
	g.logger.Debug("enemy destroyed", "x", x, "y", y, "score", g.score)
}
