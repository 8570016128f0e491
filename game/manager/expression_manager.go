package manager

import (
	"math-snake/game/entity"
	"math-snake/game/types"
)

const maxDivisionFactor = 10

type ExpressionManager struct {
	rng types.Rand
}

func NewExpressionManager(rng types.Rand) *ExpressionManager {
	return &ExpressionManager{
		rng: rng,
	}
}

// Generate draws two operands for the level and computes the answer.
// Subtraction, division and modulo are arranged so the answer is never negative.
func (em *ExpressionManager) Generate(d types.Difficulty, op types.Operation) entity.Expression {
	lo, hi := d.Range()
	a := types.IntBetween(em.rng, lo, hi)
	b := types.IntBetween(em.rng, lo, hi)

	var answer int
	switch op {
	case types.Subtraction:
		if a < b {
			a, b = b, a
		}
		answer = a - b
	case types.Multiplication:
		answer = a * b
	case types.Division:
		// Exact division: the dividend is a multiple of the divisor
		a = b * types.IntBetween(em.rng, 1, maxDivisionFactor)
		answer = a / b
	case types.Modulo:
		// x % 1 is always zero
		if b == 1 {
			b = 2
		}
		answer = a % b
	default:
		op = types.Addition
		answer = a + b
	}

	return entity.Expression{
		Left:      a,
		Right:     b,
		Operation: op,
		Answer:    answer,
	}
}
