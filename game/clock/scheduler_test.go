package clock

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerSchedulerFires(t *testing.T) {
	ts := NewTickerScheduler()
	var count atomic.Int32
	done := make(chan struct{}, 1)

	ts.Start(5*time.Millisecond, func() {
		if count.Add(1) == 3 {
			done <- struct{}{}
		}
	})
	defer ts.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Expected 3 ticks, got %d", count.Load())
	}

	if !ts.Running() {
		t.Error("Expected scheduler to be running")
	}
	if ts.TickCount() < 3 {
		t.Errorf("Expected tick count >= 3, got %d", ts.TickCount())
	}
}

func TestTickerSchedulerStopIsIdempotent(t *testing.T) {
	ts := NewTickerScheduler()

	// Stop before any start is a no-op
	ts.Stop()

	var count atomic.Int32
	ts.Start(2*time.Millisecond, func() { count.Add(1) })
	ts.Stop()
	ts.Stop()

	if ts.Running() {
		t.Fatal("Expected scheduler to be stopped")
	}

	time.Sleep(10 * time.Millisecond)
	settled := count.Load()
	time.Sleep(20 * time.Millisecond)
	if count.Load() != settled {
		t.Errorf("Ticks fired after stop: %d -> %d", settled, count.Load())
	}
}

func TestTickerSchedulerStopFromTick(t *testing.T) {
	ts := NewTickerScheduler()
	var count atomic.Int32

	ts.Start(2*time.Millisecond, func() {
		count.Add(1)
		ts.Stop()
	})

	time.Sleep(30 * time.Millisecond)
	if got := count.Load(); got != 1 {
		t.Errorf("Expected exactly one tick before self-stop, got %d", got)
	}
}

func TestTickerSchedulerRestartReplacesLoop(t *testing.T) {
	ts := NewTickerScheduler()
	var first, second atomic.Int32

	ts.Start(2*time.Millisecond, func() { first.Add(1) })
	ts.Start(2*time.Millisecond, func() { second.Add(1) })
	defer ts.Stop()

	time.Sleep(10 * time.Millisecond)
	settled := first.Load()
	time.Sleep(20 * time.Millisecond)

	if first.Load() != settled {
		t.Error("Replaced loop kept firing")
	}
	if second.Load() == 0 {
		t.Error("New loop never fired")
	}
	if ts.Interval() != 2*time.Millisecond {
		t.Errorf("Expected interval 2ms, got %v", ts.Interval())
	}
}

func TestManualScheduler(t *testing.T) {
	ms := NewManualScheduler()

	if ms.Fire() {
		t.Fatal("Fire should do nothing before Start")
	}

	count := 0
	ms.Start(100*time.Millisecond, func() { count++ })
	if fired := ms.FireN(3); fired != 3 || count != 3 {
		t.Errorf("Expected 3 ticks, fired %d counted %d", fired, count)
	}

	ms.Stop()
	ms.Stop()
	if ms.Fire() || ms.Running() {
		t.Error("Expected no ticks after Stop")
	}
	if ms.Starts() != 1 || ms.Interval() != 100*time.Millisecond {
		t.Errorf("Unexpected bookkeeping: starts %d interval %v", ms.Starts(), ms.Interval())
	}
}
