package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/invaders/internal/input"
)

// keymap binds keyboard keys to game keys. Several keys may share a binding.
var keymap = []struct {
	key  ebiten.Key
	game input.Key
}{
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyA, input.KeyLeft},
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeyD, input.KeyRight},
	{ebiten.KeyArrowUp, input.KeyArrowUp},
	{ebiten.KeyArrowDown, input.KeyArrowDown},
	{ebiten.KeySpace, input.KeySpace},
	{ebiten.KeyEnter, input.KeyEnter},
	{ebiten.KeyEscape, input.KeyEscape},
}

// Keys reads the ebiten keyboard. It implements input.Source and must be
// polled from ebiten's Update.
type Keys struct {
	closing bool
}

// Ensure Keys satisfies input.Source.
var _ input.Source = (*Keys)(nil)

// RequestClose queues a Quit event for the next poll.
func (k *Keys) RequestClose() {
	k.closing = true
}

// PollEvents reports a Quit for a pending window close, then one KeyDown
// per key that went down since the previous tick.
func (k *Keys) PollEvents() []input.Event {
	var events []input.Event
	if k.closing {
		k.closing = false
		events = append(events, input.Quit())
	}
	for _, b := range keymap {
		if inpututil.IsKeyJustPressed(b.key) {
			events = append(events, input.KeyDown(b.game))
		}
	}
	return events
}

// KeyState reports whether any key bound to g is held.
func (k *Keys) KeyState(g input.Key) bool {
	for _, b := range keymap {
		if b.game == g && ebiten.IsKeyPressed(b.key) {
			return true
		}
	}
	return false
}
