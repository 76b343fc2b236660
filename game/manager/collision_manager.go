package manager

import (
	"retry-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check reports whether a head at pos would hit a wall or one of the body cells.
// body excludes the head being tested.
func (cm *CollisionManager) Check(pos types.Point, body []types.Point) bool {
	return cm.isWallCollision(pos) || cm.isSnakeCollision(pos, body)
}

// Classify returns the cause of a collision at pos, wall first
func (cm *CollisionManager) Classify(pos types.Point, body []types.Point) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if cm.isSnakeCollision(pos, body) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position is off the board
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.InBounds(pos)
}

// isSnakeCollision checks if a position overlaps a body cell
func (cm *CollisionManager) isSnakeCollision(pos types.Point, body []types.Point) bool {
	for _, part := range body {
		if pos == part {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position lands on the food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
