package manager

import (
	"math-snake/game/entity"
	"math-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// SetGrid replaces the grid after a difficulty change
func (cm *CollisionManager) SetGrid(grid types.Grid) {
	cm.grid = grid
}

// CheckCollision checks, in order, the wall and the snake's own body
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if cm.isSelfCollision(pos, snake) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision checks the whole body, tail included: the tail has not
// moved yet when the new head is tested.
func (cm *CollisionManager) isSelfCollision(pos types.Point, snake *entity.Snake) bool {
	return snake != nil && snake.Occupies(pos)
}

// CheckFieldCollision returns the answer cell the head landed on
func (cm *CollisionManager) CheckFieldCollision(pos types.Point, field []entity.FieldNumber) (entity.FieldNumber, bool) {
	return entity.NumberAt(field, pos)
}
