package game

import (
	"log"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Command is one player intent for the current frame.
type Command int

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandRestart
	CommandQuit
)

func (c Command) direction() (types.Point, bool) {
	switch c {
	case CommandUp:
		return types.Up, true
	case CommandDown:
		return types.Down, true
	case CommandLeft:
		return types.Left, true
	case CommandRight:
		return types.Right, true
	default:
		return types.None, false
	}
}

// SoundPlayer plays audio cues. Unknown cues are the player's problem.
type SoundPlayer interface {
	Play(id types.SoundID) bool
}

type Game struct {
	Grid types.Grid

	snake   *entity.Snake
	fruit   types.Point
	nextDir types.Point

	// moveTimer counts down to the next tick, in seconds.
	moveTimer float32

	state      *manager.StateManager
	food       *manager.FoodManager
	collisions *manager.CollisionManager
	sounds     SoundPlayer
}

// NewGame builds a game on grid. sounds may be nil. seed drives fruit placement.
func NewGame(grid types.Grid, sounds SoundPlayer, seed uint64) *Game {
	g := &Game{
		Grid:       grid,
		snake:      entity.NewSnake(grid.Center(), grid.Cells()),
		moveTimer:  types.TimePerCell,
		state:      manager.NewStateManager(),
		food:       manager.NewFoodManager(grid, seed),
		collisions: manager.NewCollisionManager(grid),
		sounds:     sounds,
	}
	g.placeFruit()
	return g
}

// Handle applies one command. Directions are buffered until the next tick;
// a reversal into the neck is dropped.
func (g *Game) Handle(cmd Command) {
	if cmd == CommandRestart {
		if g.state.Resume() {
			log.Printf("round %s started", g.state.RoundID())
		}
		return
	}

	dir, ok := cmd.direction()
	if !ok {
		return
	}
	if g.snake.CanTurn(dir) {
		g.nextDir = dir
	}
}

// Update advances the clock by dt seconds and runs a tick when the move
// timer expires. dt is clamped so a stalled frame cannot skip cells.
func (g *Game) Update(dt float32) {
	if dt > types.MaxFrameDelta {
		dt = types.MaxFrameDelta
	}
	if dt < 0 {
		dt = 0
	}

	if !g.state.IsActive() {
		return
	}

	g.moveTimer -= dt
	if g.moveTimer < 0 {
		g.Step()
		g.moveTimer = types.TimePerCell
	}
}

// Step runs exactly one simulation tick and returns what the head ran into.
func (g *Game) Step() manager.CollisionType {
	prevTail := g.snake.Step(g.nextDir)

	hit := g.collisions.Check(g.snake, g.fruit)
	switch hit {
	case manager.WallCollision, manager.SelfCollision:
		g.gameOver(hit)
	case manager.FruitCollision:
		g.eat(prevTail)
	}
	return hit
}

func (g *Game) eat(prevTail types.Point) {
	g.play(types.SoundEatFruit)
	g.snake.Grow(prevTail)
	g.placeFruit()
	g.state.AddPoint()
}

func (g *Game) gameOver(cause manager.CollisionType) {
	g.play(types.SoundGameOver)
	rec := g.state.EndRound()
	log.Printf("round %s over (%s): score %d in %s", rec.ID, cause, rec.Score, rec.Duration().Round(time.Millisecond))
	g.reset()
}

// reset puts a fresh snake on the center cell. The fruit stays where it is.
func (g *Game) reset() {
	g.snake.Reset(g.Grid.Center())
	g.nextDir = types.None
	g.moveTimer = types.TimePerCell
}

func (g *Game) placeFruit() {
	fruit, ok := g.food.GenerateFood(g.snake)
	if !ok {
		log.Printf("no free cell left for fruit")
		return
	}
	g.fruit = fruit
}

func (g *Game) play(id types.SoundID) {
	if g.sounds != nil {
		g.sounds.Play(id)
	}
}

// Progress is how far the snake is between its last cell and the next, in [0,1].
func (g *Game) Progress() float32 {
	p := (types.TimePerCell - g.moveTimer) / types.TimePerCell
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// DrawPositions returns where each segment should be drawn this frame, in cell
// units, head first.
func (g *Game) DrawPositions() []types.Vec2 {
	t := g.Progress()
	out := make([]types.Vec2, g.snake.Len())
	for i, seg := range g.snake.Segments {
		out[i] = types.Vec2{
			X: float32(seg.Pos.X) + t*float32(seg.Dir.X),
			Y: float32(seg.Pos.Y) + t*float32(seg.Dir.Y),
		}
	}
	return out
}

// Segments returns a copy of the snake, head first.
func (g *Game) Segments() []entity.Segment {
	out := make([]entity.Segment, g.snake.Len())
	copy(out, g.snake.Segments)
	return out
}

func (g *Game) Fruit() types.Point {
	return g.fruit
}

func (g *Game) Score() int {
	return g.state.Score()
}

func (g *Game) HighScore() int {
	return g.state.HighScore()
}

func (g *Game) State() manager.GameState {
	return g.state.State()
}

func (g *Game) IsOver() bool {
	return g.state.State() == manager.Over
}

// Rounds returns the finished rounds of this session.
func (g *Game) Rounds() []manager.RoundRecord {
	return g.state.History()
}
