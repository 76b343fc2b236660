package ui

import (
	"retry-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type keyBinding struct {
	key int32
	cmd Command
}

// desktopKeys are checked in order each frame. Start comes before the
// arrows so a turn pressed together with Enter applies to the new run.
var desktopKeys = []keyBinding{
	{rl.KeyEnter, CmdStart},
	{rl.KeySpace, CmdStart},
	{rl.KeyOne, CmdSlow},
	{rl.KeyTwo, CmdNormal},
	{rl.KeyThree, CmdFast},
	{rl.KeyUp, CmdUp},
	{rl.KeyW, CmdUp},
	{rl.KeyDown, CmdDown},
	{rl.KeyS, CmdDown},
	{rl.KeyLeft, CmdLeft},
	{rl.KeyA, CmdLeft},
	{rl.KeyRight, CmdRight},
	{rl.KeyD, CmdRight},
	{rl.KeyP, CmdPause},
	{rl.KeyQ, CmdQuit},
	{rl.KeyEscape, CmdQuit},
}

// pressedCommands returns the commands of the keys pressed this frame, in binding order
func pressedCommands(pressed func(key int32) bool) []Command {
	var cmds []Command
	for _, b := range desktopKeys {
		if pressed(b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}

// RunDesktop opens a raylib window and blocks until it is closed.
// raylib must own the main goroutine, so call it from main.
func RunDesktop(g *game.Game, board *Board, width, height int32) {
	rl.InitWindow(width, height, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetExitKey(0)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	renderer := NewRenderer()

	for !rl.WindowShouldClose() {
		for _, cmd := range pressedCommands(rl.IsKeyPressed) {
			if Apply(g.Session, cmd) {
				return
			}
		}
		renderer.Draw(board.Frame(), g.Stats)
	}
}
