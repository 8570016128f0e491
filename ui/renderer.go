package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"math-snake/game"
	"math-snake/game/types"
)

const (
	titleFontSize = 36
	textFontSize  = 20
	lineHeight    = 25
	borderPadding = 10
)

var (
	highlight = rl.Green
	hintColor = rl.Gray
)

// Renderer draws every screen with raylib. It is also the game.Surface the
// playfield is drawn onto.
type Renderer struct {
	cellSize     int
	screenWidth  int32
	screenHeight int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// FillCell implements game.Surface
func (r *Renderer) FillCell(pos types.Point, size int, color types.Color) {
	rl.DrawRectangle(
		int32(pos.X*size),
		int32(pos.Y*size),
		int32(size), int32(size), toRaylib(color))
}

// DrawLabel implements game.Surface; the text is centered in the cell
func (r *Renderer) DrawLabel(text string, pos types.Point, fontSize int) {
	size := int32(r.cellSize)
	width := rl.MeasureText(text, int32(fontSize))
	x := int32(pos.X)*size + (size-width)/2
	y := int32(pos.Y)*size + (size-int32(fontSize))/2
	rl.DrawText(text, x, y, int32(fontSize), toRaylib(types.LabelColor))
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	r.cellSize = g.Layout().CellSize

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	switch g.State() {
	case game.StateMenu:
		r.drawMenu(g)
	case game.StatePlaying:
		r.drawGame(g)
	case game.StateGameOver:
		r.drawGameOver(g)
	}

	rl.EndDrawing()
}

func (r *Renderer) textCentered(text string, y, fontSize int32, color rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.screenWidth-width)/2, y, fontSize, color)
}

func (r *Renderer) drawMenu(g *game.Game) {
	cfg := g.Config()
	r.textCentered("Math Snake", 35, titleFontSize, rl.White)

	y := int32(120)
	rl.DrawText("Choose an operation (1-5):", 50, y, textFontSize, rl.White)
	for i, op := range types.Operations {
		color := rl.White
		if op == cfg.Operation {
			color = highlight
		}
		label := fmt.Sprintf("%d. %s (%s)", i+1, op, op.Symbol())
		rl.DrawText(label, 70, y+30+int32(i)*lineHeight, textFontSize, color)
	}

	y = 280
	rl.DrawText("Choose a difficulty (Q,W,E,R,T):", 50, y, textFontSize, rl.White)
	for i, d := range types.Difficulties {
		color := rl.White
		if d == cfg.Difficulty {
			color = highlight
		}
		label := fmt.Sprintf("%s. %s", game.MenuKey(game.SelectDifficulty(d)), d.Label())
		rl.DrawText(label, 70, y+30+int32(i)*lineHeight, textFontSize, color)
	}

	y = 440
	rl.DrawText("Color mode (C):", 50, y, textFontSize, rl.White)
	rl.DrawText("C. "+cfg.ColorMode.Label(), 70, y+lineHeight, textFontSize, highlight)

	r.textCentered("Press SPACE to start", 540, titleFontSize-8, rl.Yellow)
}

func (r *Renderer) drawGame(g *game.Game) {
	g.Render(r)

	r.textCentered(g.ExpressionText(), 20, titleFontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Score: %d", g.Score()), borderPadding, borderPadding, textFontSize, rl.White)
	rl.DrawText("ESC - menu, WASD/arrows - steer", borderPadding, r.screenHeight-lineHeight, textFontSize, hintColor)
}

func (r *Renderer) drawGameOver(g *game.Game) {
	r.textCentered("Game over!", 230, titleFontSize, rl.Red)
	r.textCentered(fmt.Sprintf("Your score: %d", g.FinalScore()), 280, titleFontSize, rl.White)
	r.textCentered(fmt.Sprintf("Cause: %s    Best this session: %d", g.LastCollision(), g.HighScore()),
		330, textFontSize, hintColor)
	r.textCentered("Press any key to return to the menu", 400, textFontSize, rl.Yellow)
}
