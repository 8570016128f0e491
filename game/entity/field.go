package entity

import (
	"fmt"

	"math-snake/game/types"
)

// Expression is a two-operand question with its precomputed answer
type Expression struct {
	Left      int
	Right     int
	Operation types.Operation
	Answer    int
}

// String renders the question, e.g. "3 + 4 = ?"
func (e Expression) String() string {
	return fmt.Sprintf("%d %s %d = ?", e.Left, e.Operation.Symbol(), e.Right)
}

// FieldNumber is an answer cell on the grid
type FieldNumber struct {
	Pos     types.Point
	Value   int
	Correct bool
}

// NumberAt returns the field number on p, if any
func NumberAt(field []FieldNumber, p types.Point) (FieldNumber, bool) {
	for _, n := range field {
		if n.Pos == p {
			return n, true
		}
	}
	return FieldNumber{}, false
}
