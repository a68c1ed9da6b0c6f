package manager

import (
	"testing"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

func snakeAt(points ...types.Point) *entity.Snake {
	s := &entity.Snake{}
	for _, p := range points {
		s.Segments = append(s.Segments, entity.Segment{Pos: p})
	}
	return s
}

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 5, Height: 5})
	fruit := types.Point{X: 2, Y: 2}

	tests := []struct {
		name  string
		snake *entity.Snake
		want  CollisionType
	}{
		{"open cell", snakeAt(types.Point{X: 1, Y: 1}), NoCollision},
		{"left wall", snakeAt(types.Point{X: -1, Y: 1}), WallCollision},
		{"right wall", snakeAt(types.Point{X: 5, Y: 1}), WallCollision},
		{"top wall", snakeAt(types.Point{X: 1, Y: -1}), WallCollision},
		{"bottom wall", snakeAt(types.Point{X: 1, Y: 5}), WallCollision},
		{"fruit", snakeAt(fruit), FruitCollision},
		{
			"body at index 2",
			snakeAt(types.Point{X: 1, Y: 1}, types.Point{X: 1, Y: 2}, types.Point{X: 1, Y: 1}),
			SelfCollision,
		},
		{
			"neck overlap ignored",
			snakeAt(types.Point{X: 1, Y: 1}, types.Point{X: 1, Y: 1}),
			NoCollision,
		},
		{
			"body beats fruit",
			snakeAt(fruit, types.Point{X: 2, Y: 3}, fruit),
			SelfCollision,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.Check(tt.snake, fruit); got != tt.want {
				t.Errorf("Check=%v want %v", got, tt.want)
			}
		})
	}
}

func TestCollisionFatal(t *testing.T) {
	if !WallCollision.Fatal() || !SelfCollision.Fatal() {
		t.Error("wall and self collisions end the round")
	}
	if NoCollision.Fatal() || FruitCollision.Fatal() {
		t.Error("fruit and no collision do not end the round")
	}
}

func TestGenerateFoodAvoidsSnake(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	fm := NewFoodManager(grid, 42)
	s := snakeAt(types.Point{X: 0, Y: 0}, types.Point{X: 1, Y: 0}, types.Point{X: 2, Y: 0})

	for i := 0; i < 200; i++ {
		food, ok := fm.GenerateFood(s)
		if !ok {
			t.Fatal("expected a free cell")
		}
		if !grid.Contains(food) {
			t.Fatalf("food %v outside grid", food)
		}
		if s.Occupies(food) {
			t.Fatalf("food %v on snake", food)
		}
	}
}

func TestGenerateFoodFallsBackToScan(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	fm := NewFoodManager(grid, 7)
	fm.maxAttempts = 0

	var cells []types.Point
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 2 {
				continue
			}
			cells = append(cells, types.Point{X: x, Y: y})
		}
	}

	food, ok := fm.GenerateFood(snakeAt(cells...))
	if !ok {
		t.Fatal("one cell is free")
	}
	if food != (types.Point{X: 1, Y: 2}) {
		t.Errorf("food=%v want (1,2)", food)
	}
}

func TestGenerateFoodFullGrid(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	fm := NewFoodManager(grid, 1)
	s := snakeAt(
		types.Point{X: 0, Y: 0}, types.Point{X: 1, Y: 0},
		types.Point{X: 1, Y: 1}, types.Point{X: 0, Y: 1},
	)

	if _, ok := fm.GenerateFood(s); ok {
		t.Error("a full grid has nowhere to put food")
	}
}

func TestGenerateFoodIsDeterministicPerSeed(t *testing.T) {
	grid := types.Grid{Width: 15, Height: 15}
	s := snakeAt(types.Point{X: 7, Y: 7})
	a, b := NewFoodManager(grid, 99), NewFoodManager(grid, 99)

	for i := 0; i < 10; i++ {
		fa, _ := a.GenerateFood(s)
		fb, _ := b.GenerateFood(s)
		if fa != fb {
			t.Fatalf("draw %d differs: %v vs %v", i, fa, fb)
		}
	}
}

func TestStateManagerScoring(t *testing.T) {
	sm := NewStateManager()

	if sm.State() != Active || sm.Score() != 0 || sm.HighScore() != 0 {
		t.Fatalf("fresh manager: state=%v score=%d high=%d", sm.State(), sm.Score(), sm.HighScore())
	}

	sm.AddPoint()
	if got := sm.AddPoint(); got != 2 {
		t.Fatalf("score=%d want 2", got)
	}
	if sm.HighScore() != 2 {
		t.Errorf("high=%d want 2", sm.HighScore())
	}
}

func TestStateManagerHighScoreNeverDecreases(t *testing.T) {
	sm := NewStateManager()
	rounds := []int{3, 1, 5, 0, 4}

	prevHigh := 0
	for _, points := range rounds {
		for i := 0; i < points; i++ {
			sm.AddPoint()
		}
		sm.EndRound()
		if sm.HighScore() < prevHigh {
			t.Fatalf("high score dropped from %d to %d", prevHigh, sm.HighScore())
		}
		prevHigh = sm.HighScore()
		sm.Resume()
	}
	if prevHigh != 5 {
		t.Errorf("high=%d want 5", prevHigh)
	}
}

func TestStateManagerEndRoundAndResume(t *testing.T) {
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sm := NewStateManager()
	sm.now = func() time.Time { return clock }
	sm.beginRound()
	firstID := sm.RoundID()

	sm.AddPoint()
	clock = clock.Add(30 * time.Second)
	rec := sm.EndRound()

	if sm.State() != Over {
		t.Fatalf("state=%v want over", sm.State())
	}
	if sm.Score() != 0 {
		t.Errorf("score=%d want 0 after reset", sm.Score())
	}
	if rec.ID != firstID || rec.Score != 1 || rec.Duration() != 30*time.Second {
		t.Errorf("record=%+v", rec)
	}
	if sm.RoundID() == firstID {
		t.Error("a new round needs a new id")
	}

	if !sm.Resume() {
		t.Fatal("Resume from over should report a change")
	}
	if sm.Resume() {
		t.Error("Resume while active should be a no-op")
	}
	if len(sm.History()) != 1 {
		t.Errorf("history len=%d want 1", len(sm.History()))
	}
}

func TestStateManagerHistoryIsBounded(t *testing.T) {
	sm := NewStateManager()
	for i := 0; i < maxRounds+10; i++ {
		sm.EndRound()
		sm.Resume()
	}
	if got := len(sm.History()); got != maxRounds {
		t.Errorf("history len=%d want %d", got, maxRounds)
	}
}
