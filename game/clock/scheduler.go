package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// TickerScheduler fires onTick on its own goroutine at a fixed interval.
// Start replaces any previous loop; Stop is idempotent and returns without
// waiting, so it may be called from inside onTick.
type TickerScheduler struct {
	mu       sync.Mutex
	stopChan chan struct{}
	interval time.Duration

	running   atomic.Bool
	tickCount atomic.Uint64
}

func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

func (ts *TickerScheduler) Start(interval time.Duration, onTick func()) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.stopLocked()
	stopChan := make(chan struct{})
	ts.stopChan = stopChan
	ts.interval = interval
	ts.running.Store(true)

	go ts.loop(interval, onTick, stopChan)
}

func (ts *TickerScheduler) Stop() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.stopLocked()
}

func (ts *TickerScheduler) stopLocked() {
	if ts.stopChan != nil {
		close(ts.stopChan)
		ts.stopChan = nil
	}
	ts.running.Store(false)
}

// Running reports whether a loop is armed
func (ts *TickerScheduler) Running() bool {
	return ts.running.Load()
}

// Interval returns the interval of the last Start
func (ts *TickerScheduler) Interval() time.Duration {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.interval
}

// TickCount returns the number of ticks fired since creation
func (ts *TickerScheduler) TickCount() uint64 {
	return ts.tickCount.Load()
}

func (ts *TickerScheduler) loop(interval time.Duration, onTick func(), stopChan <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopChan:
			return
		case <-ticker.C:
			// A stop may race with the ticker; prefer the stop
			select {
			case <-stopChan:
				return
			default:
			}
			ts.tickCount.Add(1)
			onTick()
		}
	}
}

// ManualScheduler fires ticks only when Fire is called.
// Used where ticks must be deterministic, such as tests.
type ManualScheduler struct {
	mu       sync.Mutex
	onTick   func()
	interval time.Duration
	starts   int
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (ms *ManualScheduler) Start(interval time.Duration, onTick func()) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.onTick = onTick
	ms.interval = interval
	ms.starts++
}

func (ms *ManualScheduler) Stop() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.onTick = nil
}

// Fire runs one tick if armed and reports whether it did
func (ms *ManualScheduler) Fire() bool {
	ms.mu.Lock()
	onTick := ms.onTick
	ms.mu.Unlock()

	if onTick == nil {
		return false
	}
	onTick()
	return true
}

// FireN fires up to n ticks, stopping early once disarmed
func (ms *ManualScheduler) FireN(n int) int {
	fired := 0
	for i := 0; i < n; i++ {
		if !ms.Fire() {
			break
		}
		fired++
	}
	return fired
}

func (ms *ManualScheduler) Running() bool {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.onTick != nil
}

func (ms *ManualScheduler) Interval() time.Duration {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.interval
}

// Starts returns how many times Start was called
func (ms *ManualScheduler) Starts() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.starts
}
