package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"math-snake/game"
)

// keyToken names a tcell key event with the tokens game.EventForKey expects
func keyToken(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyUp
	case tcell.KeyDown:
		return game.KeyDown
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyEscape:
		return game.KeyEscape
	case tcell.KeyF5:
		return game.KeyReload
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return game.KeySpace
		}
		return strings.ToLower(string(ev.Rune()))
	}
	return "other"
}

// isQuit reports the keys that leave the program
func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC
}
