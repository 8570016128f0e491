package types

import (
	"fmt"
	"strings"
)

// Operation is the arithmetic operator of an expression
type Operation int

const (
	Addition Operation = iota
	Subtraction
	Multiplication
	Division
	Modulo
)

// Operations lists every operation in menu order
var Operations = []Operation{Addition, Subtraction, Multiplication, Division, Modulo}

// Symbol returns the operator as shown in the expression
func (o Operation) Symbol() string {
	switch o {
	case Addition:
		return "+"
	case Subtraction:
		return "-"
	case Multiplication:
		return "*"
	case Division:
		return "/"
	case Modulo:
		return "%"
	default:
		return "?"
	}
}

func (o Operation) String() string {
	switch o {
	case Addition:
		return "addition"
	case Subtraction:
		return "subtraction"
	case Multiplication:
		return "multiplication"
	case Division:
		return "division"
	case Modulo:
		return "modulo"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

// Valid reports whether o is one of the five operations
func (o Operation) Valid() bool {
	return o >= Addition && o <= Modulo
}

// ParseOperation accepts an operation name or its symbol
func ParseOperation(s string) (Operation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, op := range Operations {
		if s == op.String() || s == op.Symbol() {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", s)
}

// Difficulty selects operand magnitude and grid density
type Difficulty int

const (
	Level1 Difficulty = iota + 1
	Level2
	Level3
	Level4
	Level5
)

// Difficulties lists every level in menu order
var Difficulties = []Difficulty{Level1, Level2, Level3, Level4, Level5}

// Valid reports whether d is one of the five levels
func (d Difficulty) Valid() bool {
	return d >= Level1 && d <= Level5
}

// Range returns the inclusive operand range of the level
func (d Difficulty) Range() (lo, hi int) {
	switch d {
	case Level1:
		return 1, 9
	case Level2:
		return 10, 99
	case Level3:
		return 100, 999
	case Level4:
		return 1000, 9999
	default:
		return 1, 9999
	}
}

// Label describes the level for the menu
func (d Difficulty) Label() string {
	switch d {
	case Level1:
		return "Single digit (1-9)"
	case Level2:
		return "Two digits (10-99)"
	case Level3:
		return "Three digits (100-999)"
	case Level4:
		return "Four digits (1000-9999)"
	default:
		return "Mixed (1-9999)"
	}
}

func (d Difficulty) String() string {
	return fmt.Sprintf("level%d", int(d))
}

// ColorMode decides whether correct and wrong cells are told apart by color
type ColorMode int

const (
	DistinctColors ColorMode = iota
	SameColor
)

// Toggle returns the other mode
func (c ColorMode) Toggle() ColorMode {
	if c == DistinctColors {
		return SameColor
	}
	return DistinctColors
}

func (c ColorMode) String() string {
	if c == SameColor {
		return "same"
	}
	return "distinct"
}

// Label describes the mode for the menu
func (c ColorMode) Label() string {
	if c == SameColor {
		return "Same color"
	}
	return "Distinct colors (blue/red)"
}

// ParseColorMode accepts "distinct" or "same"
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "distinct", "different":
		return DistinctColors, nil
	case "same":
		return SameColor, nil
	}
	return 0, fmt.Errorf("unknown color mode %q", s)
}

// Layout is the grid geometry derived from difficulty and window size
type Layout struct {
	CellSize int
	FontSize int
	Grid     Grid
}

// LayoutFor returns the cell size, number font size and resulting grid for a level
func LayoutFor(d Difficulty, window Size) Layout {
	var cell, font int
	switch d {
	case Level1:
		cell, font = 30, 20
	case Level2:
		cell, font = 35, 18
	case Level3:
		cell, font = 45, 16
	case Level4:
		cell, font = 55, 14
	default:
		cell, font = 50, 15
	}
	return Layout{
		CellSize: cell,
		FontSize: font,
		Grid: Grid{
			Width:  window.Width / cell,
			Height: window.Height / cell,
		},
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	WrongAnswerCollision
	BoardFull
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case WrongAnswerCollision:
		return "wrong answer"
	case BoardFull:
		return "board full"
	default:
		return fmt.Sprintf("CollisionType(%d)", int(c))
	}
}
