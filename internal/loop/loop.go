// Package loop drives the game: per-frame state, collisions, frame drawing
// and the fixed-budget scheduler.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/input"
)

// Clock is the loop's time source.
type Clock interface {
	// NowMillis returns monotonic milliseconds.
	NowMillis() int64
	// Sleep pauses the loop.
	Sleep(d time.Duration)
}

type systemClock struct {
	start time.Time
}

// SystemClock returns a Clock backed by the monotonic wall clock.
func SystemClock() Clock {
	return systemClock{start: time.Now()}
}

func (c systemClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Run plays frames with the standard Input → Update → Draw cycle until the
// game quits. A cancelled ctx counts as a quit signal. Each frame is padded
// to the frame budget; slow frames simply run long.
//
// The game is closed on every exit path. The only error returned is a
// failed Present.
func Run(ctx context.Context, g *Game, src input.Source, surface draw.Surface, clock Clock) error {
	defer g.Close()

	budget := g.settings.FrameBudget()
	for g.Running() {
		start := clock.NowMillis()

		if ctx.Err() != nil {
			g.Quit("context done")
		}

		// ===== INPUT + UPDATE PHASE =====
		g.Step(src, start)

		// ===== DRAW PHASE =====
		g.Render(surface)
		if err := surface.Present(); err != nil {
			return fmt.Errorf("present frame %d: %w", g.frames, err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Duration(clock.NowMillis()-start) * time.Millisecond
		if elapsed < budget {
			clock.Sleep(budget - elapsed)
		}
	}
	return nil
}
