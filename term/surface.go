// Package term plays the game in a terminal with tcell.
package term

import (
	"github.com/gdamore/tcell/v2"

	"math-snake/game/types"
)

// Surface draws grid cells as runs of terminal columns. A cell is cellCols
// columns wide and one row high; the grid starts at (originX, originY).
type Surface struct {
	screen   tcell.Screen
	originX  int
	originY  int
	cellCols int
	fills    map[types.Point]types.Color
}

func NewSurface(screen tcell.Screen, originX, originY int) *Surface {
	return &Surface{
		screen:   screen,
		originX:  originX,
		originY:  originY,
		cellCols: 2,
		fills:    make(map[types.Point]types.Color),
	}
}

// SetCellCols sets how many columns one grid cell takes
func (s *Surface) SetCellCols(n int) {
	if n < 1 {
		n = 1
	}
	s.cellCols = n
}

func (s *Surface) CellCols() int {
	return s.cellCols
}

// Begin forgets the fills of the previous frame
func (s *Surface) Begin() {
	for p := range s.fills {
		delete(s.fills, p)
	}
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FillCell implements game.Surface
func (s *Surface) FillCell(pos types.Point, _ int, color types.Color) {
	s.fills[pos] = color
	style := tcell.StyleDefault.Background(toTcell(color))
	x, y := s.origin(pos)
	for i := 0; i < s.cellCols; i++ {
		s.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// DrawLabel implements game.Surface. The label is centered in the cell and
// keeps the cell's fill as background; labels wider than the cell are cut.
func (s *Surface) DrawLabel(text string, pos types.Point, _ int) {
	style := tcell.StyleDefault.Foreground(toTcell(types.LabelColor))
	if fill, ok := s.fills[pos]; ok {
		style = style.Background(toTcell(fill))
	}
	runes := []rune(text)
	if len(runes) > s.cellCols {
		runes = runes[:s.cellCols]
	}
	x, y := s.origin(pos)
	x += (s.cellCols - len(runes)) / 2
	for i, r := range runes {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (s *Surface) origin(pos types.Point) (int, int) {
	return s.originX + pos.X*s.cellCols, s.originY + pos.Y
}

// DrawBorder frames a grid of the given size one column/row outside it
func (s *Surface) DrawBorder(grid types.Grid) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	left, top := s.originX-1, s.originY-1
	right, bottom := s.originX+grid.Width*s.cellCols, s.originY+grid.Height
	for x := left + 1; x < right; x++ {
		s.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		s.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		s.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		s.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	s.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	s.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	s.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	s.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// DrawText writes a line of plain text at a screen position
func DrawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
