package manager

import (
	"golang.org/x/exp/rand"

	"math-snake/game/types"
)

// scriptedRand replays fixed Intn results in order, wrapping around
type scriptedRand struct {
	values []int
	next   int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func seeded(seed uint64) types.Rand {
	return rand.New(rand.NewSource(seed))
}
