package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/object"
)

// Phase is the lifecycle stage of a game.
type Phase int

const (
	PhaseRunning  Phase = iota // Frames are being played
	PhaseQuitting              // Quit requested; the loop stops at the next boundary
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// Options carries the optional collaborators of a game.
type Options struct {
	Rand   object.Rand // nil: seeded from Settings.Seed, or the clock when that is 0
	Logger *log.Logger // nil: discard
}

// Game owns every piece of state for one play session.
type Game struct {
	settings config.Settings
	rng      object.Rand
	logger   *log.Logger

	phase      Phase
	quitReason string

	player    object.Player
	store     *object.Store
	particles object.Particles
	stars     *object.Starfield
	spawner   *object.EnemySpawner

	score      int
	kills      int
	frames     int
	colorShift int
	closed     bool
}

// NewGame creates a running game from validated settings.
func NewGame(cfg config.Settings, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := cfg.Seed
	rng := opts.Rand
	if rng == nil {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	g := &Game{
		settings: cfg,
		rng:      rng,
		logger:   logger,
		phase:    PhaseRunning,
		player:   object.NewPlayer(cfg),
		store:    object.NewStore(cfg),
		stars:    object.NewStarfield(cfg.Effects.StarCount, cfg.Screen, rng),
		spawner:  object.NewEnemySpawner(cfg.Enemies.SpawnIntervalMs),
	}
	logger.Info("game started",
		"seed", seed,
		"width", cfg.Screen.Width,
		"height", cfg.Screen.Height,
		"budget", cfg.FrameBudget())
	return g
}

// Running reports whether the loop should play another frame.
func (g *Game) Running() bool {
	return g.phase == PhaseRunning
}

// Phase returns the current lifecycle stage.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the points earned so far.
func (g *Game) Score() int {
	return g.score
}

// Frames returns the number of frames stepped.
func (g *Game) Frames() int {
	return g.frames
}

// Settings returns the settings the game was built with.
func (g *Game) Settings() config.Settings {
	return g.settings
}

// Quit moves the game to PhaseQuitting. Only the first reason is kept.
func (g *Game) Quit(reason string) {
	if g.phase == PhaseQuitting {
		return
	}
	g.phase = PhaseQuitting
	g.quitReason = reason
	g.logger.Debug("quit requested", "reason", reason, "frame", g.frames)
}

// Close releases every entity. It runs once; later calls do nothing.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.phase = PhaseQuitting

	g.store.Release()
	g.particles.Clear()
	g.logger.Info("game over",
		"reason", g.quitReason,
		"score", g.score,
		"kills", g.kills,
		"frames", g.frames)
}
