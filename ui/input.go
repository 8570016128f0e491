package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"math-snake/game"
)

var keyTokens = map[int32]string{
	rl.KeyOne:    "1",
	rl.KeyTwo:    "2",
	rl.KeyThree:  "3",
	rl.KeyFour:   "4",
	rl.KeyFive:   "5",
	rl.KeyQ:      "q",
	rl.KeyW:      "w",
	rl.KeyE:      "e",
	rl.KeyR:      "r",
	rl.KeyT:      "t",
	rl.KeyC:      "c",
	rl.KeyA:      "a",
	rl.KeyS:      "s",
	rl.KeyD:      "d",
	rl.KeySpace:  game.KeySpace,
	rl.KeyEscape: game.KeyEscape,
	rl.KeyF5:     game.KeyReload,
	rl.KeyUp:     game.KeyUp,
	rl.KeyDown:   game.KeyDown,
	rl.KeyLeft:   game.KeyLeft,
	rl.KeyRight:  game.KeyRight,
}

// keyToken names a raylib key code. Keys without a token still count as
// "any key" on the game-over screen.
func keyToken(key int32) string {
	if token, ok := keyTokens[key]; ok {
		return token
	}
	return "other"
}

// pollKeys drains the key queue of the current frame
func pollKeys() []string {
	var keys []string
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		keys = append(keys, keyToken(key))
	}
	return keys
}
