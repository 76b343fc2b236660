package manager

import (
	"fmt"
	"time"

	"retry-snake/game/types"
)

// State is the session controller's lifecycle state
type State int

const (
	Idle State = iota
	Running
	Paused
	RetryPending
	Ended
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case RetryPending:
		return "retry-pending"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// Renderer draws the board. Cells are a copy, head first.
type Renderer interface {
	Render(snake []types.Point, food types.Point)
}

// Scheduler drives ticks at a fixed interval.
// Stop must be idempotent and must not wait for an in-flight onTick.
type Scheduler interface {
	Start(interval time.Duration, onTick func())
	Stop()
}

// StatusSink is notified after every score, failure, speed or state change.
// Renderers and sinks are called with the session locked and must not call
// back into it.
type StatusSink interface {
	Status(Status)
}

// Status is a snapshot of the session counters
type Status struct {
	State       State
	Score       int
	Failures    int
	MaxFailures int
	Cause       types.CollisionType
	Speed       types.Speed
}

// Message is the status line shown to the player, empty while playing
func (s Status) Message() string {
	switch s.State {
	case RetryPending:
		reason := "Crashed!"
		switch s.Cause {
		case types.WallCollision:
			reason = "Hit the wall!"
		case types.SelfCollision:
			reason = "Ran into yourself!"
		}
		return fmt.Sprintf("%s Failures: %d / %d", reason, s.Failures, s.MaxFailures)
	case Ended:
		return fmt.Sprintf("Game over! Reached the maximum of %d failures. Final score: %d", s.MaxFailures, s.Score)
	case Paused:
		return "Paused"
	default:
		return ""
	}
}

// StartLabel names what the start command does in the current state
func (s Status) StartLabel() string {
	switch s.State {
	case Running:
		return "Playing..."
	case Paused:
		return "Resume"
	case RetryPending:
		return "Retry"
	case Ended:
		return "Start over"
	default:
		return "Start"
	}
}
