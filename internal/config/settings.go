package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables read by FromEnv.
const (
	EnvConfigPath = "INVADERS_CONFIG"
	EnvSeed       = "INVADERS_SEED"
)

// Settings centralizes all tunable game parameters.
// Distances are logical pixels, speeds are pixels per tick.
type Settings struct {
	Screen  Screen  `yaml:"screen"`
	Player  Player  `yaml:"player"`
	Bullets Bullets `yaml:"bullets"`
	Enemies Enemies `yaml:"enemies"`
	Effects Effects `yaml:"effects"`

	FrameBudgetMs int   `yaml:"frame_budget_ms"`
	Seed          int64 `yaml:"seed"` // 0 = seed from the wall clock
}

// Screen is the logical play area. Renderers scale it to their output.
type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Player sizes and moves the ship.
type Player struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Speed        int `yaml:"speed"`
	BottomOffset int `yaml:"bottom_offset"` // distance from the screen bottom to the ship top
}

// Bullets tunes the player's shots. Max caps the active bullets.
type Bullets struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`
	Max    int `yaml:"max"`
}

// Enemies tunes the descending fleet, its spawn rate and the points per kill.
type Enemies struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	Speed           int `yaml:"speed"`
	Max             int `yaml:"max"`
	SpawnIntervalMs int `yaml:"spawn_interval_ms"`
	KillScore       int `yaml:"kill_score"`
}

// Effects sizes explosion bursts and the starfield.
type Effects struct {
	BurstSize int `yaml:"burst_size"`
	StarCount int `yaml:"star_count"`
}

// Default returns the stock game tuning.
func Default() Settings {
	return Settings{
		Screen: Screen{Width: 800, Height: 600},
		Player: Player{Width: 50, Height: 20, Speed: 10, BottomOffset: 60},
		Bullets: Bullets{
			Width:  5,
			Height: 10,
			Speed:  10,
			Max:    7,
		},
		Enemies: Enemies{
			Width:           40,
			Height:          30,
			Speed:           2,
			Max:             10,
			SpawnIntervalMs: 2000,
			KillScore:       10,
		},
		Effects:       Effects{BurstSize: 30, StarCount: 100},
		FrameBudgetMs: 30,
	}
}

// FrameBudget is the target duration of one loop iteration.
func (s Settings) FrameBudget() time.Duration {
	return time.Duration(s.FrameBudgetMs) * time.Millisecond
}

// TicksPerSecond is the frame rate implied by the frame budget.
func (s Settings) TicksPerSecond() int {
	if s.FrameBudgetMs <= 0 {
		return 0
	}
	return 1000 / s.FrameBudgetMs
}

var errNotPositive = errors.New("must be positive")

// Validate reports the first setting that would break the simulation.
func (s Settings) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"screen.width", s.Screen.Width},
		{"screen.height", s.Screen.Height},
		{"player.width", s.Player.Width},
		{"player.height", s.Player.Height},
		{"player.speed", s.Player.Speed},
		{"bullets.width", s.Bullets.Width},
		{"bullets.height", s.Bullets.Height},
		{"bullets.speed", s.Bullets.Speed},
		{"bullets.max", s.Bullets.Max},
		{"enemies.width", s.Enemies.Width},
		{"enemies.height", s.Enemies.Height},
		{"enemies.speed", s.Enemies.Speed},
		{"enemies.max", s.Enemies.Max},
		{"enemies.spawn_interval_ms", s.Enemies.SpawnIntervalMs},
		{"effects.burst_size", s.Effects.BurstSize},
		{"effects.star_count", s.Effects.StarCount},
		{"frame_budget_ms", s.FrameBudgetMs},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("%s=%d: %w", c.name, c.value, errNotPositive)
		}
	}
	if s.Enemies.Width >= s.Screen.Width {
		return fmt.Errorf("enemies.width=%d must be narrower than screen.width=%d", s.Enemies.Width, s.Screen.Width)
	}
	if s.Player.Width > s.Screen.Width {
		return fmt.Errorf("player.width=%d exceeds screen.width=%d", s.Player.Width, s.Screen.Width)
	}
	if s.Enemies.KillScore < 0 {
		return fmt.Errorf("enemies.kill_score=%d must not be negative", s.Enemies.KillScore)
	}
	return nil
}

// Load overlays the YAML file at path on the defaults.
// Keys missing from the file keep their default value.
func Load(path string) (Settings, error) {
	s := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// FromEnv builds settings from INVADERS_CONFIG (optional YAML path) and
// INVADERS_SEED. The seed variable wins over a seed in the file.
func FromEnv() (Settings, error) {
	s := Default()
	if path := GetEnv(EnvConfigPath, ""); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return s, fmt.Errorf("load config: %w", err)
		}
		s = loaded
	}
	seed, err := GetEnvInt64(EnvSeed, s.Seed)
	if err != nil {
		return s, err
	}
	s.Seed = seed
	return s, nil
}
