package term

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"math-snake/game"
	"math-snake/game/types"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(160, 40)
	t.Cleanup(s.Fini)
	return s
}

// row returns the text of one screen line with trailing blanks removed
func row(s tcell.SimulationScreen, y int) string {
	cells, width, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < width; x++ {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

// span returns n columns of one screen line starting at x
func span(s tcell.SimulationScreen, x, y, n int) string {
	return string([]rune(row(s, y) + strings.Repeat(" ", x+n))[x : x+n])
}

func screenText(s tcell.SimulationScreen) string {
	_, _, height := s.GetContents()
	lines := make([]string, height)
	for y := range lines {
		lines[y] = row(s, y)
	}
	return strings.Join(lines, "\n")
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func newApp(t *testing.T, s tcell.Screen, seed uint64) *App {
	t.Helper()
	g := game.NewGame(game.DefaultConfig(), types.DefaultWindow, rand.New(rand.NewSource(seed)))
	return NewApp(s, g, 50*time.Millisecond)
}

func TestSurfaceDrawsCellsAndLabels(t *testing.T) {
	s := newScreen(t)
	surface := NewSurface(s, 1, 2)
	surface.SetCellCols(3)

	surface.FillCell(types.Point{X: 2, Y: 1}, 30, types.WrongColor)
	surface.DrawLabel("7", types.Point{X: 2, Y: 1}, 20)
	surface.DrawLabel("12345", types.Point{X: 4, Y: 1}, 20)
	s.Show()

	// Cell (2,1) covers columns 7-9 of row 3
	if got := strings.TrimSpace(span(s, 7, 3, 3)); got != "7" {
		t.Errorf("cell text = %q, want 7", got)
	}
	if got := span(s, 13, 3, 3); got != "123" {
		t.Errorf("long label = %q, want it cut to 123", got)
	}

	cells, width, _ := s.GetContents()
	_, background, _ := cells[3*width+8].Style.Decompose()
	if background != toTcell(types.WrongColor) {
		t.Errorf("label background = %v, want the cell fill", background)
	}
}

func TestKeyToken(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{key('W'), "w"},
		{key('3'), "3"},
		{key(' '), game.KeySpace},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.KeyUp},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.KeyEscape},
		{tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), game.KeyReload},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "other"},
	}
	for _, tt := range tests {
		if got := keyToken(tt.ev); got != tt.want {
			t.Errorf("keyToken(%v) = %q, want %q", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestAppScreens(t *testing.T) {
	s := newScreen(t)
	app := newApp(t, s, 1)

	app.Draw()
	text := screenText(s)
	for _, want := range []string{"Math Snake", "1. addition (+)", "Q. Single digit (1-9)", "Press SPACE"} {
		if !strings.Contains(text, want) {
			t.Errorf("menu is missing %q:\n%s", want, text)
		}
	}

	if app.HandleKey(key('9')) {
		t.Error("unbound key started a run")
	}
	if !app.HandleKey(key(' ')) {
		t.Fatal("space did not start a run")
	}
	app.Draw()
	text = screenText(s)
	if !strings.Contains(text, "Score: 0") || !strings.Contains(text, app.game.ExpressionText()) {
		t.Errorf("game screen is missing score or expression:\n%s", text)
	}
	answer := strconv.Itoa(app.game.Expression().Answer)
	for _, n := range app.game.Field() {
		if !n.Correct {
			continue
		}
		x := gridOriginX + n.Pos.X*app.surface.CellCols()
		cell := span(s, x, gridOriginY+n.Pos.Y, app.surface.CellCols())
		if strings.TrimSpace(cell) != answer {
			t.Errorf("correct cell shows %q, want %s", cell, answer)
		}
	}

	// Steer into the top wall
	app.HandleKey(key('w'))
	for app.game.State() == game.StatePlaying {
		app.game.Tick()
	}
	app.Draw()
	text = screenText(s)
	if !strings.Contains(text, "Game over!") || !strings.Contains(text, "Your score:") {
		t.Errorf("game over screen:\n%s", text)
	}

	app.HandleKey(key('x'))
	if app.game.State() != game.StateMenu {
		t.Errorf("state = %s after a key on game over", app.game.State())
	}
}

func TestRunQuitsOnCtrlC(t *testing.T) {
	s := newScreen(t)
	app := newApp(t, s, 2)

	done := make(chan error, 1)
	go func() {
		done <- app.Run(context.Background())
	}()
	s.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	s.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Ctrl+C")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newScreen(t)
	app := newApp(t, s, 3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
