package game

import (
	"math-snake/game/entity"
	"math-snake/game/types"
)

// EventKind identifies a discrete input command
type EventKind int

const (
	EventKey EventKind = iota // Any other key; only meaningful on the game-over screen
	EventSelectOperation
	EventSelectDifficulty
	EventToggleColor
	EventStart
	EventTurn
	EventCancel
	EventReload
)

// Event is one input command delivered to the controller
type Event struct {
	Kind       EventKind
	Operation  types.Operation
	Difficulty types.Difficulty
	Direction  entity.Direction
}

func SelectOperation(op types.Operation) Event {
	return Event{Kind: EventSelectOperation, Operation: op}
}

func SelectDifficulty(d types.Difficulty) Event {
	return Event{Kind: EventSelectDifficulty, Difficulty: d}
}

func ToggleColor() Event { return Event{Kind: EventToggleColor} }
func Start() Event       { return Event{Kind: EventStart} }
func Cancel() Event      { return Event{Kind: EventCancel} }
func Reload() Event      { return Event{Kind: EventReload} }
func AnyKey() Event      { return Event{Kind: EventKey} }

func Turn(dir entity.Direction) Event {
	return Event{Kind: EventTurn, Direction: dir}
}
