package types

// Point is a cell on the grid, or a unit direction when used as a velocity.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Opposite returns the reversed direction.
func (p Point) Opposite() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsZero reports whether p is the zero vector.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Vec2 is a position in cell units with a fractional part, used for drawing.
type Vec2 struct {
	X, Y float32
}

// Directions
var (
	None  = Point{X: 0, Y: 0}
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside [0,Width-1]x[0,Height-1].
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center is where a fresh snake spawns.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Game constants
const (
	ScreenWidth  = 600
	ScreenHeight = 600
	CellSize     = 40
	GridWidth    = 15
	GridHeight   = 15
	SegmentSize  = 20
	FruitSize    = 20

	SnakeSpeed  = 7.0 // cells per second
	TimePerCell = 1 / SnakeSpeed

	MaxFrameDelta = 0.05 // seconds; longer frames are clamped
	TargetFPS     = 60
)

// DefaultGrid is the 15x15 playfield.
var DefaultGrid = Grid{Width: GridWidth, Height: GridHeight}

// SoundID names an audio cue.
type SoundID int

const (
	SoundEatFruit SoundID = iota
	SoundGameOver
)

func (id SoundID) String() string {
	switch id {
	case SoundEatFruit:
		return "eat_fruit"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
