package game

import (
	"strconv"

	"math-snake/game/types"
)

// Surface receives draw requests in grid coordinates. size is the cell
// edge in pixels; frontends without pixels may ignore it.
type Surface interface {
	FillCell(pos types.Point, size int, color types.Color)
	DrawLabel(text string, pos types.Point, fontSize int)
}

// Render draws the playfield: snake segments, then answer cells, then one
// label per answer cell. It draws nothing outside a run.
func (g *Game) Render(s Surface) {
	if g.state != StatePlaying {
		return
	}
	size := g.layout.CellSize
	for _, p := range g.snake.Body {
		s.FillCell(p, size, types.SnakeColor)
	}
	for _, n := range g.field {
		s.FillCell(n.Pos, size, g.cellColor(n.Correct))
	}
	for _, n := range g.field {
		s.DrawLabel(strconv.Itoa(n.Value), n.Pos, g.layout.FontSize)
	}
}

func (g *Game) cellColor(correct bool) types.Color {
	if correct || g.config.ColorMode == types.SameColor {
		return types.CorrectColor
	}
	return types.WrongColor
}
