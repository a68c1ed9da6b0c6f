package ui

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const restartText = "Press space to restart"

var (
	gridColor  = rl.Color{R: 76, G: 76, B: 76, A: 255}
	fruitColor = rl.Color{R: 255, G: 0, B: 0, A: 255}
	snakeColor = rl.Color{R: 0, G: 255, B: 0, A: 255}
)

type Renderer struct {
	text         *TextRenderer
	cellSize     int32
	screenWidth  int32
	screenHeight int32
}

// NewRenderer draws with text for all labels. The Renderer does not own text.
func NewRenderer(text *TextRenderer) *Renderer {
	return &Renderer{
		text:         text,
		cellSize:     types.CellSize,
		screenWidth:  types.ScreenWidth,
		screenHeight: types.ScreenHeight,
	}
}

func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawGrid()
	r.fillCell(g.Fruit(), fruitColor)

	if g.IsOver() {
		r.text.Draw(restartText, int32(0.32*float32(r.screenWidth)), int32(0.4*float32(r.screenWidth)))
	}

	r.drawSnake(g)

	r.text.Draw(fmt.Sprintf("Score: %d", g.Score()), 0, 0)
	r.text.Draw(fmt.Sprintf(" High score: %d", g.HighScore()), int32(0.75*float32(r.screenWidth)), 0)

	rl.EndDrawing()
}

func (r *Renderer) drawGrid() {
	for x := int32(0); x < r.screenWidth; x += r.cellSize {
		rl.DrawLine(x, 0, x, r.screenHeight, gridColor)
	}
	for y := int32(0); y < r.screenHeight; y += r.cellSize {
		rl.DrawLine(0, y, r.screenWidth, y, gridColor)
	}
}

func (r *Renderer) drawSnake(g *game.Game) {
	for _, p := range g.DrawPositions() {
		rl.DrawRectangle(
			int32(p.X*float32(r.cellSize)),
			int32(p.Y*float32(r.cellSize)),
			r.cellSize, r.cellSize, snakeColor)
	}

	// Filling the cells every segment but the tail already owns squares off
	// the corners while the body is turning.
	segs := g.Segments()
	for i := 0; i < len(segs)-1; i++ {
		r.fillCell(segs[i].Pos, snakeColor)
	}
}

func (r *Renderer) fillCell(p types.Point, c rl.Color) {
	rl.DrawRectangle(int32(p.X)*r.cellSize, int32(p.Y)*r.cellSize, r.cellSize, r.cellSize, c)
}
