package ui

import (
	"fmt"
	"time"

	"retry-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	maxLivesShown = 10
)

var (
	snakeFill   = rl.Color{R: 0x4a, G: 0x14, B: 0x8c, A: 255}
	snakeStroke = rl.Color{R: 0x2e, G: 0x00, B: 0x5d, A: 255}
	foodFill    = rl.Color{R: 0xff, G: 0x6f, B: 0x00, A: 255}
)

// Renderer draws a Board frame with raylib. It must be used from the
// goroutine that opened the window.
type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	statsPanel      int32
	gameWidth       int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a third of the window
	r.statsPanel = r.screenWidth / 3
	r.gameWidth = r.screenWidth - r.statsPanel
}

func (r *Renderer) Draw(frame Frame, stats *game.LifeStats) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	availableWidth := r.gameWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 2)

	cellW := availableWidth / int32(frame.Grid.Width)
	cellH := availableHeight / int32(frame.Grid.Height)
	r.cellSize = min(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(frame.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(frame.Grid.Height)
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	// Board background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.RayWhite)

	// Food first so the snake covers it if they ever share a cell
	rl.DrawRectangle(
		r.offsetX+int32(frame.Food.X)*r.cellSize,
		r.offsetY+int32(frame.Food.Y)*r.cellSize,
		r.cellSize, r.cellSize, foodFill)

	for _, p := range frame.Snake {
		x := r.offsetX + int32(p.X)*r.cellSize
		y := r.offsetY + int32(p.Y)*r.cellSize
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, snakeFill)
		rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, snakeStroke)
	}

	fontSize := max(r.screenHeight/30, 10)
	if msg := frame.Status.Message(); msg != "" {
		textWidth := rl.MeasureText(msg, fontSize)
		rl.DrawText(msg,
			r.offsetX+(r.totalGridWidth-textWidth)/2,
			r.offsetY+r.totalGridHeight/2-fontSize/2,
			fontSize, rl.Maroon)
	}

	r.drawStatsPanel(frame, stats, fontSize)
	rl.EndDrawing()
}

func (r *Renderer) drawStatsPanel(frame Frame, stats *game.LifeStats, fontSize int32) {
	statsX := r.gameWidth + 5
	statsY := int32(borderPadding)
	lineHeight := fontSize + fontSize/3
	st := frame.Status

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	line := func(text string, color rl.Color) {
		rl.DrawText(text, statsX, statsY, fontSize, color)
		statsY += lineHeight
	}

	line(fmt.Sprintf("Score: %d", st.Score), rl.White)
	line(fmt.Sprintf("Failures: %d / %d", st.Failures, st.MaxFailures), rl.White)
	line(fmt.Sprintf("Speed: %s", st.Speed), rl.White)
	statsY += lineHeight / 2
	line(fmt.Sprintf("[Enter] %s", st.StartLabel()), rl.Yellow)
	line("[P] Pause  [1/2/3] Speed", rl.LightGray)
	line("[Arrows] Steer  [Q] Quit", rl.LightGray)

	if stats == nil {
		return
	}
	statsY += lineHeight / 2
	line("Lives:", rl.White)
	lives := stats.GetLives()
	if len(lives) > maxLivesShown {
		lives = lives[len(lives)-maxLivesShown:]
	}
	for i, life := range lives {
		line(fmt.Sprintf("%2d. %d pts, %s (%s)", i+1, life.Score, life.Duration().Round(time.Second), life.Cause), rl.LightGray)
	}
	if stats.GetLivesPlayed() > 0 {
		statsY += lineHeight / 2
		line(fmt.Sprintf("Avg: %.2f  Best: %d", stats.GetAverageScore(), stats.GetMaxScore()), rl.White)
	}
}
