package game

import (
	"log"
	"time"

	"retry-snake/game/manager"
	"retry-snake/game/types"

	"github.com/google/uuid"
)

// Config holds the fixed options of a play session
type Config struct {
	Grid  types.Grid
	Speed types.Speed
	Seed  uint64
}

// Game ties a session controller to its collaborators
type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time
	Stats     *LifeStats
	Session   *manager.StateManager
}

func NewGame(cfg Config, scheduler manager.Scheduler, renderer manager.Renderer, sinks ...manager.StatusSink) *Game {
	gameUUID := uuid.New().String()

	collisionMgr := manager.NewCollisionManager(cfg.Grid)
	foodManager := manager.NewFoodManager(cfg.Grid, cfg.Seed)
	session := manager.NewStateManager(cfg.Grid, collisionMgr, foodManager, scheduler, renderer)
	session.SetSessionID(gameUUID[:8])
	session.SetSpeed(cfg.Speed)

	game := &Game{
		UUID:      gameUUID,
		Grid:      cfg.Grid,
		StartTime: time.Now(),
		Stats:     NewLifeStats(),
		Session:   session,
	}

	session.AddSink(game.Stats)
	for _, sink := range sinks {
		if sink != nil {
			session.AddSink(sink)
		}
	}

	log.Printf("session %s: %dx%d cells, %s speed, seed %d", gameUUID, cfg.Grid.Width, cfg.Grid.Height, cfg.Speed, cfg.Seed)
	return game
}

// ElapsedTime returns the session duration in seconds
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.StartTime).Seconds()
}

// Renderers fans one frame out to several renderers
type Renderers []manager.Renderer

func (rs Renderers) Render(snake []types.Point, food types.Point) {
	for _, r := range rs {
		if r != nil {
			r.Render(snake, food)
		}
	}
}
