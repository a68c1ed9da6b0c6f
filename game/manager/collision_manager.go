package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	FruitCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case FruitCollision:
		return "fruit"
	default:
		return "unknown"
	}
}

// Fatal reports whether the collision ends the round.
func (c CollisionType) Fatal() bool {
	return c == WallCollision || c == SelfCollision
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check classifies the head's cell after a move. Walls win over the body,
// the body wins over the fruit.
func (cm *CollisionManager) Check(snake *entity.Snake, fruit types.Point) CollisionType {
	head := snake.Head().Pos

	if cm.isWallCollision(head) {
		return WallCollision
	}
	if snake.HitsBody() {
		return SelfCollision
	}
	if head == fruit {
		return FruitCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}
