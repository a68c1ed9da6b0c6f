package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid        types.Grid
	rng         *rand.Rand
	maxAttempts int
}

// NewFoodManager seeds its own generator so placement can be replayed in tests.
func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid:        grid,
		rng:         rand.New(rand.NewSource(seed)),
		maxAttempts: grid.Cells(),
	}
}

// GenerateFood picks a uniformly random cell the snake does not cover.
// Random draws are capped; after that the free cells are enumerated and one
// of them is picked. ok is false only when the snake fills the grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (food types.Point, ok bool) {
	for i := 0; i < fm.maxAttempts; i++ {
		food = types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if !snake.Occupies(food) {
			return food, true
		}
	}

	free := fm.freeCells(snake)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	taken := make(map[types.Point]struct{}, snake.Len())
	for _, p := range snake.Positions() {
		taken[p] = struct{}{}
	}

	free := make([]types.Point, 0, max(fm.grid.Cells()-len(taken), 0))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
