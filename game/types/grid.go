package types

import "fmt"

// Grid represents the game grid dimensions in cells
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// NewGrid derives the cell grid of a board measured in board units.
// Both sides must be positive multiples of cellSize.
func NewGrid(boardWidth, boardHeight, cellSize int) (Grid, error) {
	if cellSize <= 0 {
		return Grid{}, &ConfigError{Field: "cell size", Reason: fmt.Sprintf("%d is not positive", cellSize)}
	}
	if boardWidth <= 0 || boardHeight <= 0 {
		return Grid{}, &ConfigError{Field: "board size", Reason: fmt.Sprintf("%dx%d is not positive", boardWidth, boardHeight)}
	}
	if boardWidth%cellSize != 0 || boardHeight%cellSize != 0 {
		return Grid{}, &ConfigError{
			Field:  "board size",
			Reason: fmt.Sprintf("%dx%d is not divisible by cell size %d", boardWidth, boardHeight, cellSize),
		}
	}
	w, h := boardWidth/cellSize, boardHeight/cellSize
	if w < InitialLength {
		return Grid{}, &ConfigError{Field: "board size", Reason: fmt.Sprintf("%d cells wide cannot hold the starting snake", w)}
	}
	return Grid{Width: w, Height: h, CellSize: cellSize}, nil
}

// CellCount returns the number of cells per side of a square board
func (g Grid) CellCount() int {
	return g.Width
}

// Cells returns the total number of cells on the board
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// InBounds reports whether p lies on the board
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the starting head cell
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}
