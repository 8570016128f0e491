package ui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"

	"math-snake/game"
)

const targetFPS = 60

// Run opens the window and drives the game until the window is closed.
// Ticks come from the scheduler, input is read once per frame.
func Run(g *game.Game, interval time.Duration) error {
	window := g.Window()
	rl.InitWindow(int32(window.Width), int32(window.Height), "Math Snake")
	defer rl.CloseWindow()

	// Escape returns to the menu instead of closing the window
	rl.SetExitKey(0)
	rl.SetTargetFPS(targetFPS)

	renderer := NewRenderer()
	scheduler := game.NewScheduler(interval)
	scheduler.Reset(time.Now())

	for !rl.WindowShouldClose() {
		for _, key := range pollKeys() {
			ev, ok := game.EventForKey(g.State(), key)
			if !ok {
				continue
			}
			before := g.State()
			if err := g.Step(ev); err != nil {
				glog.Errorf("%v", err)
			}
			if before != game.StatePlaying && g.State() == game.StatePlaying {
				// First move comes one full interval after the start key
				scheduler.Reset(time.Now())
			}
		}

		if outcome := scheduler.Drive(time.Now(), g); outcome.Terminal() {
			glog.V(1).Infof("tick outcome: %s", outcome)
		}

		renderer.Draw(g)
	}
	return nil
}
