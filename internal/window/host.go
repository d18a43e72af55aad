package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/invaders/internal/loop"
)

// Title is the window caption.
const Title = "Advanced Space Invaders"

// host adapts a loop.Game to ebiten.Game. Ebiten paces Update at the
// game's tick rate, so the loop's own sleep is not used here.
type host struct {
	game    *loop.Game
	keys    *Keys
	surface *Surface
	clock   loop.Clock
	width   int
	height  int
}

func (h *host) Update() error {
	if ebiten.IsWindowBeingClosed() {
		h.keys.RequestClose()
	}
	if !h.game.Running() {
		return ebiten.Termination
	}
	h.game.Step(h.keys, h.clock.NowMillis())
	return nil
}

func (h *host) Draw(screen *ebiten.Image) {
	h.surface.SetTarget(screen)
	h.game.Render(h.surface)
}

func (h *host) Layout(_, _ int) (int, int) {
	return h.width, h.height
}

// Run opens a window and plays g until it quits or the window is closed.
// The game is closed on every exit path.
func Run(g *loop.Game) error {
	defer g.Close()

	cfg := g.Settings()
	h := &host{
		game:    g,
		keys:    &Keys{},
		surface: NewSurface(),
		clock:   loop.SystemClock(),
		width:   cfg.Screen.Width,
		height:  cfg.Screen.Height,
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TicksPerSecond())

	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
