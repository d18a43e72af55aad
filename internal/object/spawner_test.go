package object

import (
	"testing"

	"github.com/tomz197/invaders/internal/config"
)

func TestSpawnerInterval(t *testing.T) {
	store := NewStore(config.Default())
	sp := NewEnemySpawner(2000)
	rng := newRand()

	steps := []struct {
		now  int64
		want bool
	}{
		{1000, false}, // starts the clock
		{2999, false},
		{3000, true},
		{3030, false},
		{4999, false},
		{5000, true},
	}
	for _, s := range steps {
		if got := sp.Update(s.now, store, 0, rng); got != s.want {
			t.Errorf("Update(%d) = %v, want %v", s.now, got, s.want)
		}
	}
	if len(store.Enemies) != 2 {
		t.Errorf("spawned %d enemies, want 2", len(store.Enemies))
	}
}

func TestSpawnerRespectsCap(t *testing.T) {
	cfg := config.Default()
	store := NewStore(cfg)
	sp := NewEnemySpawner(cfg.Enemies.SpawnIntervalMs)
	rng := newRand()

	now := int64(0)
	sp.Update(now, store, 0, rng)
	for i := 0; i < 30; i++ {
		now += 2000
		sp.Update(now, store, 0, rng)
		if len(store.Enemies) > cfg.Enemies.Max {
			t.Fatalf("enemy count %d exceeds cap", len(store.Enemies))
		}
	}
	if len(store.Enemies) != cfg.Enemies.Max {
		t.Fatalf("enemy count = %d, want %d", len(store.Enemies), cfg.Enemies.Max)
	}

	// A freed slot is filled on the next frame: the interval already elapsed.
	store.Enemies[0].Active = false
	store.Compact()
	if !sp.Update(now+30, store, 0, rng) {
		t.Error("spawner did not refill a freed slot after the interval")
	}
}

func TestSpawnerPlacement(t *testing.T) {
	cfg := config.Default()
	store := NewStore(cfg)
	sp := NewEnemySpawner(1)
	rng := newRand()

	sp.Update(0, store, 0, rng)
	for now := int64(1); now <= 10; now++ {
		sp.Update(now, store, 30, rng)
	}
	for _, e := range store.Enemies {
		if e.X < 0 || e.X >= cfg.Screen.Width-cfg.Enemies.Width {
			t.Errorf("enemy x=%d outside [0, %d)", e.X, cfg.Screen.Width-cfg.Enemies.Width)
		}
		if e.Y != -cfg.Enemies.Height {
			t.Errorf("enemy y=%d, want %d", e.Y, -cfg.Enemies.Height)
		}
		if e.Color.A != 255 {
			t.Errorf("enemy color %v is not opaque", e.Color)
		}
	}

	scripted := NewStore(cfg)
	sp = NewEnemySpawner(1)
	r := &scriptedRand{ints: []int{123, 1, 2, 3}}
	sp.Update(0, scripted, 0, r)
	sp.Update(1, scripted, 10, r)
	e := scripted.Enemies[0]
	if e.X != 123 {
		t.Errorf("enemy x = %d, want 123", e.X)
	}
	if e.Color.R != 11 || e.Color.G != 22 || e.Color.B != 33 {
		t.Errorf("enemy color = %v, want (11, 22, 33)", e.Color)
	}
}
