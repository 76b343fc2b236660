package types

import (
	"fmt"
	"time"
)

// Game constants
const (
	MaxFailures   = 10  // Collisions allowed before the session ends
	InitialLength = 2   // Snake length after every reset
	CellSize      = 20  // Default cell size in board units
	BoardSize     = 400 // Default board side in board units
)

// Point is a cell address in grid units
type Point struct {
	X, Y int
}

// Add returns p translated by the unit vector of d
func (p Point) Add(d Direction) Point {
	v := d.ToPoint()
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Direction represents a cardinal direction
type Direction int

const (
	NONE Direction = iota
	UP
	RIGHT
	DOWN
	LEFT
)

// ToPoint converts a Direction into a movement vector
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}

// CollisionType represents the cause of a lost life
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Speed is one of the selectable tick rates
type Speed int

const (
	Slow Speed = iota
	Normal
	Fast
)

// Interval returns the tick interval for the speed
func (s Speed) Interval() time.Duration {
	switch s {
	case Slow:
		return 150 * time.Millisecond
	case Fast:
		return 60 * time.Millisecond
	default:
		return 100 * time.Millisecond
	}
}

func (s Speed) String() string {
	switch s {
	case Slow:
		return "slow"
	case Fast:
		return "fast"
	default:
		return "normal"
	}
}

// ParseSpeed maps a speed name to its Speed
func ParseSpeed(name string) (Speed, error) {
	switch name {
	case "slow":
		return Slow, nil
	case "normal", "":
		return Normal, nil
	case "fast":
		return Fast, nil
	}
	return Normal, &ConfigError{Field: "speed", Reason: fmt.Sprintf("unknown speed %q (want slow, normal or fast)", name)}
}

// ConfigError reports a configuration precondition violated at startup
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
