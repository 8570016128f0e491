package term

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"math-snake/game"
	"math-snake/game/entity"
	"math-snake/game/types"
)

const (
	gridOriginX = 1
	gridOriginY = 2
)

var (
	plain     = tcell.StyleDefault
	selected  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	prompt    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	hint      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	alert     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	titleText = tcell.StyleDefault.Bold(true)
)

// App runs a game on an initialized tcell screen. Only the loop goroutine
// touches the game; the polling goroutine just forwards screen events.
type App struct {
	screen   tcell.Screen
	game     *game.Game
	surface  *Surface
	interval time.Duration
}

func NewApp(screen tcell.Screen, g *game.Game, interval time.Duration) *App {
	if interval <= 0 {
		interval = game.DefaultTickInterval
	}
	return &App{
		screen:   screen,
		game:     g,
		surface:  NewSurface(screen, gridOriginX, gridOriginY),
		interval: interval,
	}
}

// Run blocks until ctx is cancelled or the player presses Ctrl+C
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return a.poll(ctx, events)
	})
	grp.Go(func() error {
		defer func() {
			cancel()
			// Wake the poller blocked in PollEvent
			a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()
		return a.loop(ctx, events)
	})
	return grp.Wait()
}

func (a *App) poll(ctx context.Context, events chan<- tcell.Event) error {
	for {
		ev := a.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

func (a *App) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				if a.HandleKey(ev) {
					ticker.Reset(a.interval)
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
		case <-ticker.C:
			if outcome := a.game.Tick(); outcome.Terminal() {
				glog.V(1).Infof("tick outcome: %s", outcome)
			}
		}
		a.Draw()
	}
}

// HandleKey feeds one key to the game and reports whether a run just started
func (a *App) HandleKey(ev *tcell.EventKey) bool {
	event, ok := game.EventForKey(a.game.State(), keyToken(ev))
	if !ok {
		return false
	}
	before := a.game.State()
	if err := a.game.Step(event); err != nil {
		glog.Errorf("%v", err)
		return false
	}
	return before != game.StatePlaying && a.game.State() == game.StatePlaying
}

// Draw repaints the whole screen for the current state
func (a *App) Draw() {
	a.screen.Clear()
	switch a.game.State() {
	case game.StateMenu:
		a.drawMenu()
	case game.StatePlaying:
		a.drawGame()
	case game.StateGameOver:
		a.drawGameOver()
	}
	a.screen.Show()
}

func (a *App) drawMenu() {
	cfg := a.game.Config()
	DrawText(a.screen, 2, 0, titleText, "Math Snake")

	y := 2
	DrawText(a.screen, 2, y, plain, "Choose an operation (1-5):")
	for i, op := range types.Operations {
		style := plain
		if op == cfg.Operation {
			style = selected
		}
		DrawText(a.screen, 4, y+1+i, style, fmt.Sprintf("%d. %s (%s)", i+1, op, op.Symbol()))
	}

	y += len(types.Operations) + 2
	DrawText(a.screen, 2, y, plain, "Choose a difficulty (Q,W,E,R,T):")
	for i, d := range types.Difficulties {
		style := plain
		if d == cfg.Difficulty {
			style = selected
		}
		label := fmt.Sprintf("%s. %s", game.MenuKey(game.SelectDifficulty(d)), d.Label())
		DrawText(a.screen, 4, y+1+i, style, label)
	}

	y += len(types.Difficulties) + 2
	DrawText(a.screen, 2, y, plain, "Color mode (C):")
	DrawText(a.screen, 4, y+1, selected, "C. "+cfg.ColorMode.Label())

	DrawText(a.screen, 2, y+3, prompt, "Press SPACE to start, Ctrl+C to quit")
}

func (a *App) drawGame() {
	grid := a.game.Grid()
	a.surface.Begin()
	a.surface.SetCellCols(labelWidth(a.game.Field()) + 1)

	DrawText(a.screen, gridOriginX, 0, plain, fmt.Sprintf("Score: %d", a.game.Score()))
	DrawText(a.screen, gridOriginX+16, 0, titleText, a.game.ExpressionText())

	a.surface.DrawBorder(grid)
	a.game.Render(a.surface)

	DrawText(a.screen, gridOriginX, gridOriginY+grid.Height+1, hint, "ESC - menu, WASD/arrows - steer")
}

func (a *App) drawGameOver() {
	DrawText(a.screen, 2, 2, alert, "Game over!")
	DrawText(a.screen, 2, 4, plain, fmt.Sprintf("Your score: %d", a.game.FinalScore()))
	DrawText(a.screen, 2, 5, hint, fmt.Sprintf("Cause: %s", a.game.LastCollision()))
	DrawText(a.screen, 2, 6, hint, fmt.Sprintf("Best this session: %d", a.game.HighScore()))
	DrawText(a.screen, 2, 8, prompt, "Press any key to return to the menu")
}

// labelWidth is the widest value on the field, at least one digit
func labelWidth(field []entity.FieldNumber) int {
	width := 1
	for _, n := range field {
		if w := len(strconv.Itoa(n.Value)); w > width {
			width = w
		}
	}
	return width
}
