package ui

import (
	"sync"

	"retry-snake/game/manager"
	"retry-snake/game/types"
)

// Board keeps the latest frame for a draw loop running on another goroutine.
// It implements manager.Renderer and manager.StatusSink.
type Board struct {
	mu     sync.RWMutex
	grid   types.Grid
	snake  []types.Point
	food   types.Point
	status manager.Status
	seq    uint64
}

// Frame is a copy of the board taken under lock
type Frame struct {
	Grid   types.Grid
	Snake  []types.Point
	Food   types.Point
	Status manager.Status
	Seq    uint64
}

func NewBoard(grid types.Grid) *Board {
	return &Board{grid: grid}
}

func (b *Board) Render(snake []types.Point, food types.Point) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snake = snake
	b.food = food
	b.seq++
}

func (b *Board) Status(st manager.Status) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = st
	b.seq++
}

func (b *Board) Frame() Frame {
	b.mu.RLock()
	defer b.mu.RUnlock()

	snake := make([]types.Point, len(b.snake))
	copy(snake, b.snake)
	return Frame{
		Grid:   b.grid,
		Snake:  snake,
		Food:   b.food,
		Status: b.status,
		Seq:    b.seq,
	}
}

// Command is a frontend-independent player action
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdStart
	CmdPause
	CmdSlow
	CmdNormal
	CmdFast
	CmdQuit
)

// Controller is the inbound API of a session
type Controller interface {
	RequestDirection(dir types.Direction) bool
	RequestStart() bool
	Pause() bool
	SetSpeed(speed types.Speed)
}

// Apply forwards cmd to the session and reports whether the frontend should quit
func Apply(c Controller, cmd Command) bool {
	switch cmd {
	case CmdUp:
		c.RequestDirection(types.UP)
	case CmdDown:
		c.RequestDirection(types.DOWN)
	case CmdLeft:
		c.RequestDirection(types.LEFT)
	case CmdRight:
		c.RequestDirection(types.RIGHT)
	case CmdStart:
		c.RequestStart()
	case CmdPause:
		c.Pause()
	case CmdSlow:
		c.SetSpeed(types.Slow)
	case CmdNormal:
		c.SetSpeed(types.Normal)
	case CmdFast:
		c.SetSpeed(types.Fast)
	case CmdQuit:
		return true
	}
	return false
}
