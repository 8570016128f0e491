package manager

import (
	"errors"
	"fmt"

	"math-snake/game/entity"
	"math-snake/game/types"
)

// ErrFieldTooSmall is returned when the interior cannot hold a full field
var ErrFieldTooSmall = errors.New("grid interior too small for answer field")

type FieldManager struct {
	rng types.Rand
}

func NewFieldManager(rng types.Rand) *FieldManager {
	return &FieldManager{
		rng: rng,
	}
}

// Populate places the correct answer and the wrong answers on distinct free
// interior cells. The correct cell is always first in the result.
func (fm *FieldManager) Populate(grid types.Grid, answer int, snake *entity.Snake) ([]entity.FieldNumber, error) {
	area := grid.Interior()
	free := fm.freeCells(area, snake, nil)
	if len(free) < types.FieldSize {
		return nil, fmt.Errorf("%w: %d free cells in %dx%d grid, need %d",
			ErrFieldTooSmall, len(free), grid.Width, grid.Height, types.FieldSize)
	}

	field := make([]entity.FieldNumber, 0, types.FieldSize)
	used := make(map[types.Point]struct{}, types.FieldSize)
	for i := 0; i < types.FieldSize; i++ {
		pos := fm.placement(area, snake, used)
		used[pos] = struct{}{}

		n := entity.FieldNumber{Pos: pos, Value: answer, Correct: true}
		if i > 0 {
			n.Value = fm.WrongAnswer(answer)
			n.Correct = false
		}
		field = append(field, n)
	}
	return field, nil
}

// placement draws random interior cells until one is free. After
// MaxPlacementTries misses it picks among the cells that are still free.
func (fm *FieldManager) placement(area types.Rect, snake *entity.Snake, used map[types.Point]struct{}) types.Point {
	for try := 0; try < types.MaxPlacementTries; try++ {
		pos := types.Point{
			X: types.IntBetween(fm.rng, area.MinX, area.MaxX),
			Y: types.IntBetween(fm.rng, area.MinY, area.MaxY),
		}
		if fm.isFree(pos, snake, used) {
			return pos
		}
	}
	free := fm.freeCells(area, snake, used)
	return free[fm.rng.Intn(len(free))]
}

func (fm *FieldManager) isFree(pos types.Point, snake *entity.Snake, used map[types.Point]struct{}) bool {
	if _, taken := used[pos]; taken {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}

func (fm *FieldManager) freeCells(area types.Rect, snake *entity.Snake, used map[types.Point]struct{}) []types.Point {
	free := make([]types.Point, 0, area.Area())
	for y := area.MinY; y <= area.MaxY; y++ {
		for x := area.MinX; x <= area.MaxX; x++ {
			p := types.Point{X: x, Y: y}
			if fm.isFree(p, snake, used) {
				free = append(free, p)
			}
		}
	}
	return free
}

// WrongAnswer returns a value near the answer but never equal to it and
// never negative.
func (fm *FieldManager) WrongAnswer(answer int) int {
	offset := types.IntBetween(fm.rng, -types.MaxWrongOffset, types.MaxWrongOffset)
	if offset == 0 {
		offset = 1
		if fm.rng.Intn(2) == 0 {
			offset = -1
		}
	}
	wrong := answer + offset
	if wrong < 0 {
		wrong = 0
	}
	if wrong == answer {
		wrong = answer + abs(offset)
	}
	return wrong
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
