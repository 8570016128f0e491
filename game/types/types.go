package types

import "fmt"

// Point is a cell position on the grid
type Point struct {
	X, Y int
}

// Add returns the point shifted by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the cell a new snake starts on
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Rect is an inclusive rectangle of cells
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Empty reports whether the rectangle holds no cells
func (r Rect) Empty() bool {
	return r.MaxX < r.MinX || r.MaxY < r.MinY
}

// Area returns the number of cells in the rectangle
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return (r.MaxX - r.MinX + 1) * (r.MaxY - r.MinY + 1)
}

// Contains reports whether p lies inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Interior returns the part of the grid answer cells may spawn in.
// The top inset is larger so numbers never sit under the expression header.
func (g Grid) Interior() Rect {
	return Rect{
		MinX: InsetSide,
		MinY: InsetTop,
		MaxX: g.Width - 1 - InsetSide,
		MaxY: g.Height - 1 - InsetBottom,
	}
}

// Game constants
const (
	InsetSide   = 1
	InsetTop    = 3
	InsetBottom = 1

	WrongAnswers      = 8                // Wrong-answer cells per field
	FieldSize         = WrongAnswers + 1 // Correct cell plus wrong cells
	PointsPerAnswer   = 10
	MaxPlacementTries = 64 // Random draws per cell before scanning for a free one
	MaxWrongOffset    = 10
)

// Rand is the source of randomness used by the generators.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// IntBetween returns a uniform integer in [lo, hi]
func IntBetween(r Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// Size is a pixel extent
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// DefaultWindow is the playfield size in pixels
var DefaultWindow = Size{Width: 800, Height: 600}

// Color is an opaque RGB triple; frontends map it to their own color type
type Color struct {
	R, G, B uint8
}

// Palette
var (
	SnakeColor   = Color{R: 0, G: 255, B: 0}
	CorrectColor = Color{R: 0, G: 0, B: 255}
	WrongColor   = Color{R: 255, G: 0, B: 0}
	LabelColor   = Color{R: 255, G: 255, B: 255}
)
