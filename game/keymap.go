package game

import (
	"strings"

	"math-snake/game/entity"
	"math-snake/game/types"
)

// Key tokens shared by the frontends. Letters and digits are their own
// lowercase token.
const (
	KeySpace  = "space"
	KeyEscape = "escape"
	KeyReload = "f5"
	KeyUp     = "up"
	KeyDown   = "down"
	KeyLeft   = "left"
	KeyRight  = "right"
)

var menuKeys = map[string]Event{
	"1":      SelectOperation(types.Addition),
	"2":      SelectOperation(types.Subtraction),
	"3":      SelectOperation(types.Multiplication),
	"4":      SelectOperation(types.Division),
	"5":      SelectOperation(types.Modulo),
	"q":      SelectDifficulty(types.Level1),
	"w":      SelectDifficulty(types.Level2),
	"e":      SelectDifficulty(types.Level3),
	"r":      SelectDifficulty(types.Level4),
	"t":      SelectDifficulty(types.Level5),
	"c":      ToggleColor(),
	KeySpace: Start(),
}

var playKeys = map[string]Event{
	"w":       Turn(entity.Up),
	"s":       Turn(entity.Down),
	"a":       Turn(entity.Left),
	"d":       Turn(entity.Right),
	KeyUp:     Turn(entity.Up),
	KeyDown:   Turn(entity.Down),
	KeyLeft:   Turn(entity.Left),
	KeyRight:  Turn(entity.Right),
	KeyEscape: Cancel(),
}

// EventForKey translates a key token into the event it means in state.
// The second result is false for keys with no meaning there.
func EventForKey(state State, key string) (Event, bool) {
	key = strings.ToLower(key)
	if key == KeyReload {
		return Reload(), true
	}
	switch state {
	case StateMenu:
		ev, ok := menuKeys[key]
		return ev, ok
	case StatePlaying:
		ev, ok := playKeys[key]
		return ev, ok
	case StateGameOver:
		return AnyKey(), true
	}
	return Event{}, false
}

// MenuKey returns the key bound to an operation or a difficulty, for menu text
func MenuKey(ev Event) string {
	for key, bound := range menuKeys {
		if bound == ev {
			return strings.ToUpper(key)
		}
	}
	return ""
}
