package manager

import (
	"log"
	"sync"

	"retry-snake/game/entity"
	"retry-snake/game/types"
)

// StateManager owns the snake, the food and the session counters and runs the
// Idle -> Running -> RetryPending/Ended state machine. All entry points are
// safe for concurrent use; ticks, input and commands serialize on one mutex.
type StateManager struct {
	mu sync.Mutex

	grid         types.Grid
	collisionMgr *CollisionManager
	foodManager  *FoodManager
	scheduler    Scheduler
	renderer     Renderer
	sinks        []StatusSink
	sessionID    string

	snake *entity.Snake
	food  types.Point

	state     State
	score     int
	failures  int
	lastCause types.CollisionType
	speed     types.Speed

	// Direction requested for the next tick and the per-tick latch guarding it
	pending types.Direction
	latched bool

	// Incremented on every arm and stop of the scheduler; ticks carrying an
	// older epoch are dropped.
	epoch uint64
}

// View is a consistent copy of the board and counters for polling frontends
type View struct {
	Snake     []types.Point
	Food      types.Point
	Direction types.Direction
	Status    Status
}

func NewStateManager(grid types.Grid, collisionMgr *CollisionManager, foodManager *FoodManager, scheduler Scheduler, renderer Renderer) *StateManager {
	sm := &StateManager{
		grid:         grid,
		collisionMgr: collisionMgr,
		foodManager:  foodManager,
		scheduler:    scheduler,
		renderer:     renderer,
		snake:        entity.NewSnake(grid.Center()),
		state:        Idle,
		speed:        types.Normal,
	}

	sm.mu.Lock()
	sm.resetBoard()
	sm.mu.Unlock()

	return sm
}

// SetSessionID tags log lines with id
func (sm *StateManager) SetSessionID(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessionID = id
}

// AddSink registers a status sink and sends it the current status
func (sm *StateManager) AddSink(sink StatusSink) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sinks = append(sm.sinks, sink)
	sink.Status(sm.statusLocked())
}

// RequestStart handles the start/retry/restart command.
// It returns false when the session is already running.
func (sm *StateManager) RequestStart() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	switch sm.state {
	case Running:
		return false
	case Ended:
		sm.fullReset()
		fallthrough
	case Idle:
		sm.resetBoard()
	case RetryPending, Paused:
		// Board was already reset on failure; counters stay.
	}

	sm.logf("start from %s at %s speed (score %d, failures %d/%d)",
		sm.state, sm.speed, sm.score, sm.failures, types.MaxFailures)
	sm.state = Running
	sm.lastCause = types.NoCollision
	sm.arm()
	sm.notify()
	return true
}

// RequestDirection latches dir for the next tick. Only the first accepted
// request per tick counts; reversing the committed direction is rejected
// without consuming the latch.
func (sm *StateManager) RequestDirection(dir types.Direction) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.state != Running || sm.latched || dir == types.NONE {
		return false
	}
	if dir == sm.snake.Direction.Opposite() {
		return false
	}
	sm.pending = dir
	sm.latched = true
	return true
}

// SetSpeed selects the tick rate; a running session is re-armed at once
func (sm *StateManager) SetSpeed(speed types.Speed) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.speed == speed {
		return
	}
	sm.speed = speed
	if sm.state == Running {
		sm.arm()
	}
	sm.notify()
}

// Pause stops ticking without costing a failure; start resumes
func (sm *StateManager) Pause() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.state != Running {
		return false
	}
	sm.disarm()
	sm.state = Paused
	sm.notify()
	return true
}

// Close stops the scheduler for shutdown
func (sm *StateManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.disarm()
}

func (sm *StateManager) Status() Status {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.statusLocked()
}

func (sm *StateManager) Snapshot() View {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return View{
		Snake:     sm.snake.Cells(),
		Food:      sm.food,
		Direction: sm.snake.Direction,
		Status:    sm.statusLocked(),
	}
}

func (sm *StateManager) tick(epoch uint64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if epoch != sm.epoch {
		return
	}
	sm.step()
}

func (sm *StateManager) step() {
	if sm.state != Running {
		return
	}

	dir := sm.pending
	newHead := sm.snake.Peek(dir)
	ate := sm.collisionMgr.IsFoodCollision(newHead, sm.food)

	// The body after the move: the tail leaves unless the snake grows
	body := sm.snake.Body
	if !ate {
		body = body[:len(body)-1]
	}

	if sm.collisionMgr.Check(newHead, body) {
		sm.fail(sm.collisionMgr.Classify(newHead, body))
		return
	}

	sm.snake.Advance(dir, ate)
	sm.latched = false

	if ate {
		sm.score++
		sm.placeFood()
		sm.notify()
	}
	sm.render()
}

func (sm *StateManager) fail(cause types.CollisionType) {
	sm.disarm()
	sm.failures++
	sm.lastCause = cause

	if sm.failures >= types.MaxFailures {
		sm.state = Ended
		sm.logf("%s collision, session over with score %d", cause, sm.score)
	} else {
		sm.state = RetryPending
		sm.logf("%s collision, failures %d/%d", cause, sm.failures, types.MaxFailures)
		sm.resetBoard()
	}
	sm.notify()
}

// fullReset clears the counters and returns to Idle
func (sm *StateManager) fullReset() {
	sm.score = 0
	sm.failures = 0
	sm.lastCause = types.NoCollision
	sm.state = Idle
	sm.notify()
}

// resetBoard puts a fresh snake and food on the board and draws it
func (sm *StateManager) resetBoard() {
	sm.snake.Reset(sm.grid.Center())
	sm.pending = sm.snake.Direction
	sm.latched = false
	sm.placeFood()
	sm.render()
}

func (sm *StateManager) placeFood() {
	food, ok := sm.foodManager.Place(sm.snake.Body)
	if !ok {
		// Board is full; nothing left to eat
		sm.logf("no free cell for food")
		return
	}
	sm.food = food
}

func (sm *StateManager) arm() {
	sm.disarm()
	epoch := sm.epoch
	sm.scheduler.Start(sm.speed.Interval(), func() {
		sm.tick(epoch)
	})
}

func (sm *StateManager) disarm() {
	sm.epoch++
	sm.scheduler.Stop()
}

func (sm *StateManager) render() {
	if sm.renderer != nil {
		sm.renderer.Render(sm.snake.Cells(), sm.food)
	}
}

func (sm *StateManager) notify() {
	status := sm.statusLocked()
	for _, sink := range sm.sinks {
		sink.Status(status)
	}
}

func (sm *StateManager) statusLocked() Status {
	return Status{
		State:       sm.state,
		Score:       sm.score,
		Failures:    sm.failures,
		MaxFailures: types.MaxFailures,
		Cause:       sm.lastCause,
		Speed:       sm.speed,
	}
}

func (sm *StateManager) logf(format string, args ...any) {
	if sm.sessionID != "" {
		format = "[" + sm.sessionID + "] " + format
	}
	log.Printf(format, args...)
}
