package object

// EnemySpawner releases a new enemy once per interval while the fleet is
// below its cap.
type EnemySpawner struct {
	interval int64 // milliseconds
	last     int64
	started  bool
}

// NewEnemySpawner creates a spawner with the given interval in milliseconds.
func NewEnemySpawner(intervalMs int) *EnemySpawner {
	return &EnemySpawner{interval: int64(intervalMs)}
}

// Update spawns an enemy if the interval has elapsed and the store has room.
// The first call only starts the clock. Returns true when an enemy spawned.
func (sp *EnemySpawner) Update(now int64, store *Store, score int, rng Rand) bool {
	if !sp.started {
		sp.started = true
		sp.last = now
		return false
	}
	if now-sp.last < sp.interval || !store.EnemyRoom() {
		return false
	}

	x := rng.Intn(store.screen.Width - store.enemies.Width)
	if !store.SpawnEnemy(x, EnemyColor(score, rng)) {
		return false
	}
	sp.last = now
	return true
}
