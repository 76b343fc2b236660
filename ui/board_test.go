package ui

import (
	"testing"

	"retry-snake/game/manager"
	"retry-snake/game/types"
)

type fakeController struct {
	dirs   []types.Direction
	starts int
	pauses int
	speeds []types.Speed
}

func (c *fakeController) RequestDirection(dir types.Direction) bool {
	c.dirs = append(c.dirs, dir)
	return true
}

func (c *fakeController) RequestStart() bool {
	c.starts++
	return true
}

func (c *fakeController) Pause() bool {
	c.pauses++
	return true
}

func (c *fakeController) SetSpeed(speed types.Speed) {
	c.speeds = append(c.speeds, speed)
}

func testGrid(t *testing.T) types.Grid {
	t.Helper()
	grid, err := types.NewGrid(types.BoardSize, types.BoardSize, types.CellSize)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return grid
}

func TestBoardFrameIsACopy(t *testing.T) {
	board := NewBoard(testGrid(t))
	snake := []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}}
	board.Render(snake, types.Point{X: 3, Y: 4})
	board.Status(manager.Status{State: manager.Running, Score: 2, MaxFailures: types.MaxFailures})

	frame := board.Frame()
	if frame.Seq != 2 {
		t.Errorf("Expected seq 2, got %d", frame.Seq)
	}
	if frame.Food != (types.Point{X: 3, Y: 4}) || frame.Status.Score != 2 {
		t.Errorf("Unexpected frame %+v", frame)
	}

	frame.Snake[0] = types.Point{X: 0, Y: 0}
	if board.Frame().Snake[0] != (types.Point{X: 10, Y: 10}) {
		t.Error("Frame shares storage with the board")
	}
}

func TestApply(t *testing.T) {
	c := &fakeController{}
	cmds := []Command{CmdUp, CmdLeft, CmdDown, CmdRight, CmdStart, CmdPause, CmdSlow, CmdNormal, CmdFast, CmdNone}
	for _, cmd := range cmds {
		if Apply(c, cmd) {
			t.Errorf("Command %d should not quit", cmd)
		}
	}

	wantDirs := []types.Direction{types.UP, types.LEFT, types.DOWN, types.RIGHT}
	if len(c.dirs) != len(wantDirs) {
		t.Fatalf("Expected %d direction requests, got %d", len(wantDirs), len(c.dirs))
	}
	for i, dir := range wantDirs {
		if c.dirs[i] != dir {
			t.Errorf("Request %d: expected %v, got %v", i, dir, c.dirs[i])
		}
	}
	if c.starts != 1 || c.pauses != 1 {
		t.Errorf("Expected one start and one pause, got %d and %d", c.starts, c.pauses)
	}
	if len(c.speeds) != 3 || c.speeds[0] != types.Slow || c.speeds[2] != types.Fast {
		t.Errorf("Unexpected speed changes %v", c.speeds)
	}

	if !Apply(c, CmdQuit) {
		t.Error("Quit should stop the frontend")
	}
}
