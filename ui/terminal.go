package ui

import (
	"fmt"
	"time"

	"retry-snake/game"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	snakeStyle  = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	hintStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Terminal plays the game inside a tcell screen
type Terminal struct {
	screen tcell.Screen
	board  *Board
	game   *game.Game

	lastSeq uint64
	dirty   bool
}

// NewTerminal takes ownership of an initialized screen
func NewTerminal(screen tcell.Screen, board *Board, g *game.Game) *Terminal {
	return &Terminal{
		screen: screen,
		board:  board,
		game:   g,
		dirty:  true,
	}
}

// OpenTerminal creates and initializes the default screen
func OpenTerminal(board *Board, g *game.Game) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.HideCursor()
	return NewTerminal(screen, board, g), nil
}

// Run blocks until the player quits
func (t *Terminal) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			frame := t.board.Frame()
			if t.dirty || frame.Seq != t.lastSeq {
				t.Draw(frame)
			}
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return !Apply(t.game.Session, keyCommand(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		t.screen.Sync()
		t.dirty = true
	}
	return true
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

func keyCommand(key tcell.Key, r rune) Command {
	switch key {
	case tcell.KeyUp:
		return CmdUp
	case tcell.KeyDown:
		return CmdDown
	case tcell.KeyLeft:
		return CmdLeft
	case tcell.KeyRight:
		return CmdRight
	case tcell.KeyEnter:
		return CmdStart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	default:
		// Only runes are bound beyond this point
		if key != tcell.KeyRune {
			return CmdNone
		}
	}

	switch r {
	case 'w', 'k':
		return CmdUp
	case 's', 'j':
		return CmdDown
	case 'a', 'h':
		return CmdLeft
	case 'd', 'l':
		return CmdRight
	case ' ':
		return CmdStart
	case 'p':
		return CmdPause
	case '1':
		return CmdSlow
	case '2':
		return CmdNormal
	case '3':
		return CmdFast
	case 'q':
		return CmdQuit
	}
	return CmdNone
}

// Draw paints frame with every cell two columns wide so the board looks square
func (t *Terminal) Draw(frame Frame) {
	s := t.screen
	s.Clear()

	w, h := frame.Grid.Width*2, frame.Grid.Height
	for x := 0; x < w+2; x++ {
		s.SetContent(x, 0, '─', nil, borderStyle)
		s.SetContent(x, h+1, '─', nil, borderStyle)
	}
	for y := 0; y < h+2; y++ {
		s.SetContent(0, y, '│', nil, borderStyle)
		s.SetContent(w+1, y, '│', nil, borderStyle)
	}
	s.SetContent(0, 0, '┌', nil, borderStyle)
	s.SetContent(w+1, 0, '┐', nil, borderStyle)
	s.SetContent(0, h+1, '└', nil, borderStyle)
	s.SetContent(w+1, h+1, '┘', nil, borderStyle)

	t.drawCell(frame.Food.X, frame.Food.Y, '●', foodStyle)
	for i, p := range frame.Snake {
		style := snakeStyle
		if i == 0 {
			style = headStyle
		}
		t.drawCell(p.X, p.Y, '█', style)
	}

	st := frame.Status
	y := h + 2
	t.drawText(0, y, fmt.Sprintf("Score: %d  Failures: %d / %d  Speed: %s", st.Score, st.Failures, st.MaxFailures, st.Speed), textStyle)
	y++
	if msg := st.Message(); msg != "" {
		t.drawText(0, y, msg, alertStyle)
	}
	y++
	t.drawText(0, y, fmt.Sprintf("[Enter] %s  [p] Pause  [1/2/3] Speed  [q] Quit", st.StartLabel()), hintStyle)

	if stats := t.game.Stats; stats != nil && stats.GetLivesPlayed() > 0 {
		y++
		t.drawText(0, y, fmt.Sprintf("Lives: %d  Avg: %.2f  Best: %d", stats.GetLivesPlayed(), stats.GetAverageScore(), stats.GetMaxScore()), textStyle)
	}

	s.Show()
	t.lastSeq = frame.Seq
	t.dirty = false
}

func (t *Terminal) drawCell(x, y int, r rune, style tcell.Style) {
	t.screen.SetContent(1+x*2, 1+y, r, nil, style)
	t.screen.SetContent(2+x*2, 1+y, r, nil, style)
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
