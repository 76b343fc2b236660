package ui

import (
	"strings"
	"testing"

	"retry-snake/game"
	"retry-snake/game/clock"
	"retry-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen, *game.Game, *clock.ManualScheduler) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)

	grid := testGrid(t)
	board := NewBoard(grid)
	sched := clock.NewManualScheduler()
	g := game.NewGame(game.Config{Grid: grid, Speed: types.Normal, Seed: 1}, sched, board, board)
	return NewTerminal(screen, board, g), screen, g, sched
}

func readRow(screen tcell.SimulationScreen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(mainc)
	}
	return sb.String()
}

func TestTerminalDrawsBoard(t *testing.T) {
	term, screen, g, _ := newTestTerminal(t)
	frame := term.board.Frame()
	term.Draw(frame)

	head := g.Session.Snapshot().Snake[0]
	mainc, _, _, _ := screen.GetContent(1+head.X*2, 1+head.Y)
	if mainc != '█' {
		t.Errorf("Expected head at %v, got %q", head, mainc)
	}

	food := frame.Food
	mainc, _, _, _ = screen.GetContent(2+food.X*2, 1+food.Y)
	if mainc != '●' {
		t.Errorf("Expected food at %v, got %q", food, mainc)
	}

	if corner, _, _, _ := screen.GetContent(0, 0); corner != '┌' {
		t.Errorf("Expected border corner, got %q", corner)
	}

	status := readRow(screen, frame.Grid.Height+2, 60)
	if !strings.Contains(status, "Failures: 0 / 10") {
		t.Errorf("Unexpected status row %q", status)
	}
	hint := readRow(screen, frame.Grid.Height+4, 60)
	if !strings.Contains(hint, "Start") {
		t.Errorf("Expected start label, got %q", hint)
	}
	if term.lastSeq != frame.Seq || term.dirty {
		t.Error("Draw should record the frame it painted")
	}
}

func TestTerminalShowsCrashMessage(t *testing.T) {
	term, screen, g, sched := newTestTerminal(t)

	g.Session.RequestStart()
	for sched.Fire() {
	}

	frame := term.board.Frame()
	term.Draw(frame)

	msg := readRow(screen, frame.Grid.Height+3, 60)
	if !strings.Contains(msg, "Hit the wall!") {
		t.Errorf("Expected crash message, got %q", msg)
	}
	hint := readRow(screen, frame.Grid.Height+4, 60)
	if !strings.Contains(hint, "Retry") {
		t.Errorf("Expected retry label, got %q", hint)
	}
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Command
	}{
		{"Arrow up", tcell.KeyUp, 0, CmdUp},
		{"Arrow down", tcell.KeyDown, 0, CmdDown},
		{"Arrow left", tcell.KeyLeft, 0, CmdLeft},
		{"Arrow right", tcell.KeyRight, 0, CmdRight},
		{"Enter", tcell.KeyEnter, 0, CmdStart},
		{"Escape", tcell.KeyEscape, 0, CmdQuit},
		{"Ctrl-C", tcell.KeyCtrlC, 0, CmdQuit},
		{"WASD", tcell.KeyRune, 'a', CmdLeft},
		{"Vim", tcell.KeyRune, 'k', CmdUp},
		{"Space", tcell.KeyRune, ' ', CmdStart},
		{"Pause", tcell.KeyRune, 'p', CmdPause},
		{"Fast", tcell.KeyRune, '3', CmdFast},
		{"Quit", tcell.KeyRune, 'q', CmdQuit},
		{"Unbound rune", tcell.KeyRune, 'x', CmdNone},
		{"Unbound key", tcell.KeyTab, 0, CmdNone},
		{"Rune ignored on other keys", tcell.KeyTab, 'q', CmdNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyCommand(tt.key, tt.r); got != tt.want {
				t.Errorf("keyCommand(%v, %q) = %d, want %d", tt.key, tt.r, got, tt.want)
			}
		})
	}
}
