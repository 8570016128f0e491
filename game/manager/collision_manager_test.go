package manager

import (
	"testing"

	"math-snake/game/entity"
	"math-snake/game/types"
)

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 10})
	snake := &entity.Snake{Body: []types.Point{{X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}}}

	tests := []struct {
		pos  types.Point
		want types.CollisionType
	}{
		{types.Point{X: -1, Y: 1}, types.WallCollision},
		{types.Point{X: 10, Y: 5}, types.WallCollision},
		{types.Point{X: 5, Y: 10}, types.WallCollision},
		{types.Point{X: 0, Y: 0}, types.SelfCollision},
		{types.Point{X: 1, Y: 0}, types.SelfCollision}, // tail still in place
		{types.Point{X: 1, Y: 1}, types.NoCollision},
	}
	for _, tt := range tests {
		if got := cm.CheckCollision(tt.pos, snake); got != tt.want {
			t.Errorf("CheckCollision(%v) = %s, want %s", tt.pos, got, tt.want)
		}
	}
}

func TestSetGrid(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 10})
	p := types.Point{X: 12, Y: 3}
	if cm.CheckCollision(p, nil) != types.WallCollision {
		t.Fatal("expected wall before resize")
	}
	cm.SetGrid(types.Grid{Width: 20, Height: 10})
	if got := cm.CheckCollision(p, nil); got != types.NoCollision {
		t.Errorf("after resize CheckCollision = %s, want none", got)
	}
}

func TestCheckFieldCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 10})
	field := []entity.FieldNumber{
		{Pos: types.Point{X: 4, Y: 4}, Value: 7, Correct: true},
		{Pos: types.Point{X: 5, Y: 4}, Value: 9},
	}
	n, ok := cm.CheckFieldCollision(types.Point{X: 5, Y: 4}, field)
	if !ok || n.Value != 9 || n.Correct {
		t.Errorf("CheckFieldCollision = %+v, %v", n, ok)
	}
	if _, ok := cm.CheckFieldCollision(types.Point{X: 6, Y: 4}, field); ok {
		t.Error("empty cell reported as a field number")
	}
}
